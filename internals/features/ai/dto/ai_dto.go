package dto

// 🔹 Request generator ide kegiatan/materi
type IdeaGeneratorRequest struct {
	Topic    string `json:"topic" validate:"required,min=3"`
	Audience string `json:"audience"`
	Count    int    `json:"count" validate:"gte=0,lte=10"`
}

// 🔹 Request generator kuis
type QuizGeneratorRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Topic      string `json:"topic" validate:"required,min=3"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count      int    `json:"count" validate:"gte=0,lte=10"`
}

// 🔹 Request persiapan mengajar
type TeacherPrepRequest struct {
	Subject string `json:"subject" validate:"required"`
	Topic   string `json:"topic" validate:"required,min=3"`
	Grade   string `json:"grade"`
}

// 🔹 Request tutor pemrograman
type CodeTutorRequest struct {
	Language string `json:"language" validate:"required"`
	Question string `json:"question" validate:"required,min=10"`
}

// Bentuk jawaban yang diharapkan dari model. Parse gagal → 502.

type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type IdeaListResponse struct {
	Ideas []Idea `json:"ideas"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

type PrepQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TeacherPrepResponse struct {
	Questions []PrepQuestion `json:"questions"`
}

type CodeTutorResponse struct {
	Explanation string `json:"explanation"`
	ExampleCode string `json:"example_code"`
}
