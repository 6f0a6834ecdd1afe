package service

import (
	"fmt"

	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/profile"
)

// PromptSet builds the system instruction for each assistant mode. It is pure:
// the output depends only on the mode and the profile document loaded at
// startup.
type PromptSet struct {
	profileJSON string
}

func NewPromptSet(doc *profile.Document) *PromptSet {
	return &PromptSet{profileJSON: doc.Pretty()}
}

// SystemPrompt returns the chat system instruction for mode.
func (p *PromptSet) SystemPrompt(mode domain.Mode) string {
	switch mode {
	case domain.ModeMoshiur:
		return p.moshiurPrompt()
	default:
		return generalPrompt()
	}
}

func (p *PromptSet) moshiurPrompt() string {
	return fmt.Sprintf(`You are a professional AI assistant for Moshiur Rahman's portfolio.
You ONLY answer from the provided JSON data.
Do not invent or assume any information outside the JSON.
If the requested info does not exist in the JSON, politely say it's not available
and suggest the user try general mode.
If a link exists in JSON, return it exactly as:
<a href="https://example.com" target="_blank" rel="noopener noreferrer" style="color: orange !important;">Example Link</a>

Never use markdown link syntax.

JSON Data:
%s`, p.profileJSON)
}

func generalPrompt() string {
	return `You are Gemini, a professional, friendly AI assistant.
Provide helpful and accurate responses to user queries.
If you provide links, use HTML anchor tags only, never markdown link syntax.`
}

// CommandPrompt returns the system instruction for the one-shot command
// endpoint, which uses its own persona wording.
func (p *PromptSet) CommandPrompt(mode domain.Mode) string {
	switch mode {
	case domain.ModeMoshiur:
		return fmt.Sprintf(`You are a helpful AI assistant who ONLY answers questions based on this JSON data about Moshiur Rahman:
%s
If asked about anything else, politely say you only answer questions about Moshiur Rahman.`, p.profileJSON)
	default:
		return `You are a friendly and helpful AI assistant named Gemini. Your goal is to have natural, flowing conversations. Be empathetic, use personality, and remember the context of the conversation to provide relevant and engaging responses. Avoid being overly formal or robotic.`
	}
}
