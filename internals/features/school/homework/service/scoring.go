// internals/features/school/homework/service/scoring.go
package service

import "strings"

// MCQQuestion adalah bentuk soal pilihan ganda di kolom questions.
type MCQQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// VivaQuestion adalah bentuk soal lisan/esai di kolom questions.
type VivaQuestion struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Marks    float64 `json:"marks"`
}

// ScoreMCQ menghitung skor 0–100: jumlah jawaban yang sama persis
// dengan kunci dibagi jumlah soal. Tidak ada normalisasi jawaban.
func ScoreMCQ(questions []MCQQuestion, answers map[string]string) (score float64, correct int) {
	if len(questions) == 0 {
		return 0, 0
	}
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}
	score = float64(correct) / float64(len(questions)) * 100
	return score, correct
}

// MarksFromScore mengonversi skor persentase menjadi nilai akhir.
func MarksFromScore(score, maxMarks float64) float64 {
	return score / 100 * maxMarks
}

// VivaEvaluator menilai jawaban viva. Implementasi default memakai
// heuristik panjang jawaban; nanti bisa diganti penilaian manual guru.
type VivaEvaluator interface {
	Evaluate(questions []VivaQuestion, answers map[string]string) (score float64, marksObtained float64)
}

// Ambang heuristik: jawaban lebih dari 20 karakter dianggap serius.
const (
	vivaMinAnswerLength = 20
	vivaCreditRatio     = 0.7
)

// LengthHeuristicEvaluator memberi 70% dari bobot soal untuk jawaban
// yang melewati ambang panjang, 0 untuk sisanya.
type LengthHeuristicEvaluator struct{}

func (LengthHeuristicEvaluator) Evaluate(questions []VivaQuestion, answers map[string]string) (float64, float64) {
	var totalMarks, obtained float64
	for _, q := range questions {
		totalMarks += q.Marks
		answer := strings.TrimSpace(answers[q.ID])
		if len(answer) > vivaMinAnswerLength {
			obtained += q.Marks * vivaCreditRatio
		}
	}
	if totalMarks == 0 {
		return 0, 0
	}
	return obtained / totalMarks * 100, obtained
}
