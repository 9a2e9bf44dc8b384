// Package gemini is the optional LLM capability behind quiz generation. It
// builds prompts, calls the Gemini API, and digs structured quiz JSON out of
// the response. Any error it returns makes the caller fall back to the
// deterministic engine.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"quizito/internal/engine"
	"quizito/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// ModelName is the Gemini model to use.
	ModelName = "gemini-2.0-flash"

	// maxContextChars caps how much extracted document text is inlined
	// into a quiz prompt.
	maxContextChars = 1500

	maxAttempts = 3
)

var difficultyDescriptions = map[engine.Difficulty]string{
	engine.DifficultyEasy:   "Beginner level with straightforward questions",
	engine.DifficultyMedium: "Intermediate level with moderately challenging questions",
	engine.DifficultyHard:   "Advanced level with complex and thought-provoking questions",
}

// Client wraps the Gemini SDK client and a configured model handle.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a Gemini client with the given API key. The caller
// decides what happens when no key is configured; this constructor never
// reads the environment itself.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(ModelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.7)
	model.SetTopK(40)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(8192)

	return &Client{client: client, model: model}, nil
}

// Close closes the underlying Gemini client.
func (c *Client) Close() {
	c.client.Close()
}

// GenerateQuiz asks Gemini for a complete quiz document. The result is
// decoded but not defaulted; callers run engine.ApplyQuizDefaults over it.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, difficulty engine.Difficulty, numQuestions int, quizType, contextText string) (*models.Quiz, error) {
	prompt := buildQuizPrompt(topic, difficulty, numQuestions, quizType, contextText)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonText := extractJSONObject(text)
	if jsonText == "" {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var quiz models.Quiz
	if err := json.Unmarshal([]byte(jsonText), &quiz); err != nil {
		return nil, fmt.Errorf("failed to parse quiz JSON: %w", err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz response contained no questions")
	}
	return &quiz, nil
}

// GenerateQuestions asks Gemini for a bare question list. Scoring fields are
// filled by engine.ApplyQuestionDefaults afterwards.
func (c *Client) GenerateQuestions(ctx context.Context, topic, questionType string, count int, difficulty engine.Difficulty, contextText string) ([]models.Question, error) {
	prompt := buildQuestionsPrompt(topic, questionType, count, difficulty, contextText)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonText := extractJSONArray(text)
	if jsonText == "" {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var questions []models.Question
	if err := json.Unmarshal([]byte(jsonText), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse questions JSON: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no valid questions generated")
	}
	return questions, nil
}

// generate sends a prompt and concatenates the text parts of the response,
// retrying transient failures.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = fmt.Errorf("failed to generate content (attempt %d): %w", attempt, err)
			time.Sleep(2 * time.Second)
			continue
		}

		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = fmt.Errorf("no content generated (attempt %d)", attempt)
			time.Sleep(2 * time.Second)
			continue
		}

		var out strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
		if out.Len() == 0 {
			lastErr = fmt.Errorf("no text parts in response (attempt %d)", attempt)
			time.Sleep(2 * time.Second)
			continue
		}
		return out.String(), nil
	}
	return "", fmt.Errorf("gemini generation failed after %d attempts: %w", maxAttempts, lastErr)
}

func buildQuizPrompt(topic string, difficulty engine.Difficulty, numQuestions int, quizType, contextText string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a comprehensive quiz about %q with these specifications:\n\n", topic)
	fmt.Fprintf(&b, "- Number of questions: %d\n", numQuestions)
	fmt.Fprintf(&b, "- Difficulty: %s (%s)\n", difficulty, difficultyDescriptions[difficulty])
	fmt.Fprintf(&b, "- Question type: %s\n", quizType)
	b.WriteString("- Target audience: Students and adult learners\n")

	if contextText != "" {
		fmt.Fprintf(&b, "\nAdditional context from uploaded documents:\n%s\n", truncate(contextText, maxContextChars))
	}

	b.WriteString(`
Requirements for each question:
1. Question text should be clear, concise, and educational
2. Provide exactly 4 options for multiple-choice questions
3. Mark the correct answer by index (0-3)
4. Include a brief but informative explanation
5. Assign points appropriate to the difficulty
6. Include relevant tags
7. Add educational value beyond simple recall

`)
	fmt.Fprintf(&b, `Format your response as a JSON object with this structure:
{
  "title": "Engaging and descriptive quiz title",
  "description": "Detailed description of quiz content and learning objectives",
  "category": "Appropriate category",
  "difficulty": "%[1]s",
  "estimatedTime": %[2]g,
  "totalPoints": %[3]d,
  "learningObjectives": ["Objective 1", "Objective 2"],
  "questions": [
    {
      "question": "Clear and concise question text",
      "type": "%[4]s",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "explanation": "Detailed explanation of why this answer is correct",
      "points": %[5]d,
      "timeLimit": %[6]d,
      "difficulty": "%[1]s",
      "category": "Subcategory if applicable",
      "tags": ["tag1", "tag2"],
      "educationalTip": "Additional learning tip"
    }
  ],
  "tags": ["%[7]s", "%[1]s", "quiz"],
  "metadata": {}
}

IMPORTANT: Return ONLY valid JSON. Do not include any text outside the JSON object.
`,
		difficulty,
		float64(numQuestions)*0.8,
		numQuestions*difficulty.Points(),
		quizType,
		difficulty.Points(),
		difficulty.TimeLimit(),
		engine.Slug(topic),
	)

	return b.String()
}

func buildQuestionsPrompt(topic, questionType string, count int, difficulty engine.Difficulty, contextText string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d %s questions about %q.\n\n", count, questionType, topic)
	fmt.Fprintf(&b, "Difficulty: %s (%s)\n", difficulty, difficultyDescriptions[difficulty])
	if contextText != "" {
		fmt.Fprintf(&b, "Context: %s\n", truncate(contextText, 500))
	}

	fmt.Fprintf(&b, `
For each question include:
1. Clear question text
2. Exactly 4 options for multiple-choice questions
3. The correct answer index (0-3)
4. A brief explanation

Format your response as a JSON array:
[
  {
    "question": "Question text",
    "type": "%s",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 0,
    "explanation": "Brief explanation"
  }
]

IMPORTANT: Return ONLY valid JSON. Do not include any text outside the JSON array.
`, questionType)

	return b.String()
}

var (
	quizObjectPattern = regexp.MustCompile(`(?s)\{.*"questions".*\}`)
	arrayPattern      = regexp.MustCompile(`(?s)\[.*\]`)
	codeBlockPattern  = regexp.MustCompile("(?s)```(?:json)?\\s*([\\[{].*?[\\]}])\\s*```")
)

// extractJSONObject pulls a quiz-shaped JSON object out of text that may be
// wrapped in markdown fences or surrounded by prose.
func extractJSONObject(text string) string {
	if m := codeBlockPattern.FindStringSubmatch(text); len(m) > 1 && strings.HasPrefix(m[1], "{") {
		return m[1]
	}
	return quizObjectPattern.FindString(text)
}

// extractJSONArray pulls the outermost JSON array out of possibly wrapped
// text.
func extractJSONArray(text string) string {
	if m := codeBlockPattern.FindStringSubmatch(text); len(m) > 1 && strings.HasPrefix(m[1], "[") {
		return m[1]
	}
	return arrayPattern.FindString(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
