package controller

import (
	"context"
	"log"

	"examadmin/internal/errors"
)

// NoticeKind tells the renderer how to style a notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeWarning NoticeKind = "warning"
)

// Notice is a transient, dismissible message shown after an action.
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// Confirmer answers the "are you sure?" prompt for destructive actions.
type Confirmer func(prompt string) bool

// Confirmed returns a Confirmer with a fixed answer.
func Confirmed(answer bool) Confirmer {
	return func(string) bool { return answer }
}

// Mutation describes one create/update/delete/toggle/send action.
type Mutation struct {
	Name string
	// Validate runs before anything else; an error blocks the request.
	Validate func() error
	// Confirm is asked with Prompt before a destructive call. Nil means the
	// action is not destructive.
	Confirm Confirmer
	Prompt  string
	Call    func(ctx context.Context) error
	// Refetch resyncs the list after a successful call.
	Refetch func(ctx context.Context) error
	Success string
	Failure string
}

// Run validates, confirms, calls and refetches. The list is never touched
// locally: on failure nothing is refetched and the returned notice carries
// the server's reason when it gave one.
func Run(ctx context.Context, m Mutation) (Notice, error) {
	if m.Validate != nil {
		if err := m.Validate(); err != nil {
			return failed(m, err), err
		}
	}

	if m.Confirm != nil && !m.Confirm(m.Prompt) {
		return failed(m, errors.ErrNotConfirmed), errors.ErrNotConfirmed
	}

	if err := m.Call(ctx); err != nil {
		log.Printf("%s failed: %v", m.Name, err)
		return failed(m, err), err
	}

	if m.Refetch != nil {
		if err := m.Refetch(ctx); err != nil {
			log.Printf("%s: refetch failed: %v", m.Name, err)
		}
	}
	return Notice{Kind: NoticeSuccess, Text: m.Success}, nil
}

func failed(m Mutation, err error) Notice {
	return Notice{Kind: NoticeError, Text: errors.UserMessage(err, m.Failure)}
}
