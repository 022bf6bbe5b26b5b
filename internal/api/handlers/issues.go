package handlers

import "github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"

// Issue находка валидации календаря в ответе
type Issue struct {
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FromIssues конвертирует находки валидации; nil превращается в пустой список
func FromIssues(issues []scheduling.Issue) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, Issue{Kind: string(issue.Kind), Field: issue.Field, Message: issue.Message})
	}
	return out
}
