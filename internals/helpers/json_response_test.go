package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		page, perPage int
		wantPages     int
		wantHasNext   bool
		wantHasPrev   bool
	}{
		{"first of many", 101, 1, 25, 5, true, false},
		{"middle page", 101, 3, 25, 5, true, true},
		{"last page", 101, 5, 25, 5, false, true},
		{"empty result still one page", 0, 1, 25, 1, false, false},
		{"defaults on zero per_page", 10, 1, 0, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNext, p.HasNext)
			assert.Equal(t, tt.wantHasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(fiber.StatusBadRequest))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(fiber.StatusUnprocessableEntity))
	assert.Equal(t, "UPSTREAM_ERROR", statusToErrorCode(fiber.StatusBadGateway))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(fiber.StatusInternalServerError))
	assert.Equal(t, "ERROR", statusToErrorCode(fiber.StatusTeapot))
}
