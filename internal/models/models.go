package models

// Quiz is a fully assembled quiz document. Metadata is an open key/value
// map so that provider-specific fields (ai_provider, enhancedAt, ...) can be
// attached without widening the struct.
type Quiz struct {
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Category           string         `json:"category"`
	Difficulty         string         `json:"difficulty"`
	EstimatedTime      float64        `json:"estimatedTime"`
	TotalPoints        int            `json:"totalPoints"`
	LearningObjectives []string       `json:"learningObjectives"`
	Questions          []Question     `json:"questions"`
	Tags               []string       `json:"tags"`
	Metadata           map[string]any `json:"metadata"`
}

// Question is a single multiple-choice question. Options always holds
// exactly 4 entries and CorrectAnswer is the index of the right one.
type Question struct {
	Text           string   `json:"question"`
	Type           string   `json:"type"`
	Options        []string `json:"options"`
	CorrectAnswer  int      `json:"correctAnswer"`
	Explanation    string   `json:"explanation"`
	Points         int      `json:"points"`
	TimeLimit      int      `json:"timeLimit"`
	Difficulty     string   `json:"difficulty"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags,omitempty"`
	EducationalTip string   `json:"educationalTip,omitempty"`
}

// TopicAnalysis is the recommendation record returned by topic analysis.
type TopicAnalysis struct {
	Topic                  string            `json:"topic"`
	Category               string            `json:"category"`
	RecommendedDifficulty  string            `json:"recommendedDifficulty"`
	SuggestedQuestionCount map[string]int    `json:"suggestedQuestionCounts"`
	KeyAreas               []string          `json:"keyAreas"`
	SuggestedQuestionTypes []string          `json:"suggestedQuestionTypes"`
	EstimatedQuizTime      int               `json:"estimatedQuizTime"`
	Prerequisites          string            `json:"prerequisites"`
	TargetAudience         []string          `json:"targetAudience"`
	LearningPotential      LearningPotential `json:"learningPotential"`
	CommonMisconceptions   []string          `json:"commonMisconceptions"`
	Resources              []Resource        `json:"resources"`
}

// LearningPotential estimates what a learner can get out of a topic.
type LearningPotential struct {
	KnowledgeDepth        string   `json:"knowledgeDepth"`
	SkillDevelopment      []string `json:"skillDevelopment"`
	PracticalApplications []string `json:"practicalApplications"`
	ComplexityLevel       string   `json:"complexityLevel"`
}

// Resource is a suggested learning resource for a topic.
type Resource struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
}

// PDFAnalysis summarizes extracted document text for quiz generation.
type PDFAnalysis struct {
	Statistics      PDFStatistics      `json:"statistics"`
	ContentAnalysis PDFContentAnalysis `json:"contentAnalysis"`
	PotentialTopics []string           `json:"potentialQuizTopics"`
	KeyThemes       []string           `json:"keyThemes"`
}

// PDFStatistics holds raw text statistics.
type PDFStatistics struct {
	TotalPages            int     `json:"totalPages"`
	TotalWords            int     `json:"totalWords"`
	TotalSentences        int     `json:"totalSentences"`
	AverageWordLength     float64 `json:"averageWordLength"`
	AverageSentenceLength float64 `json:"averageSentenceLength"`
}

// PDFContentAnalysis holds the heuristic classification of the text.
type PDFContentAnalysis struct {
	Type           string `json:"type"`
	Complexity     string `json:"complexity"`
	TechnicalLevel string `json:"technicalLevel"`
}

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
