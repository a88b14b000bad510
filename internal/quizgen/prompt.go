package quizgen

import "github.com/shardulfunde/vidya/internal/genpipe"

var testTemplate = genpipe.Template{
	ID: "test-generation",
	Text: `You are an exam paper generator.

Generate a {difficulty} level test.

Topic: {topic}
Number of questions: {num_questions}
Language: {language}

Rules:
- Only MCQ questions
- Exactly 4 options per question
- correct_index must match the correct option
- No explanations
- No extra text, no markdown

{format_instructions}`,
	Fields: []string{"topic", "difficulty", "num_questions", "language"},
}

var analysisTemplate = genpipe.Template{
	ID: "test-analysis",
	Text: `You are an expert personalized tutor.
Analyze the following test results to help the student improve.

Context:
- Topic: {topic}
- Language: {language}

Test Results:
{test_data_summary}

Task:
1. Compare the User's Answer vs the Correct Answer for each question.
2. Identify specific patterns in their mistakes (e.g. confused concept A with B).
3. Highlight the concepts they answered correctly.
4. Create a specific, actionable 3-step study plan.

Output Rules:
- Be encouraging but direct about mistakes.

{format_instructions}`,
	Fields: []string{"topic", "language", "test_data_summary"},
}
