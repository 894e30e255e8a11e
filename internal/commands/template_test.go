package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/mistvale/go-adventure/internal/game"
)

func TestExpandTemplate(t *testing.T) {
	data := &interactionData{Actor: "Alice", Item: "oak door", Room: "camp"}

	tests := map[string]struct {
		tmpl   string
		expOut string
		expErr bool
	}{
		"plain text passes through": {
			tmpl:   "The door swings open.",
			expOut: "The door swings open.",
		},
		"field expansion": {
			tmpl:   "{{ .Actor }} forces the {{ .Item }} open.",
			expOut: "Alice forces the oak door open.",
		},
		"sprig function": {
			tmpl:   "{{ upper .Actor }} did it.",
			expOut: "ALICE did it.",
		},
		"malformed template": {
			tmpl:   "{{ .Actor",
			expErr: true,
		},
		"unknown field": {
			tmpl:   "{{ .Nope }}",
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := ExpandTemplate(tt.tmpl, data)

			if tt.expErr {
				if err == nil {
					t.Fatalf("expected error, got %q", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "expanded", out, tt.expOut)
		})
	}
}

func TestHandleInteraction_TemplateMessage(t *testing.T) {
	ctx, _, room := newTestContext()

	bell := game.NewStatefulItem("brass bell", "bell", "A brass bell.", 1, 0, false, "silent")
	bell.AddStateDescription("rung", "The bell still hums.")
	bell.AddInteraction("push", game.Interaction{
		FromState:   "silent",
		TargetState: "rung",
		Message:     "{{ .Actor }} strikes the {{ .Item }} and the sound rolls across the camp.",
	})
	room.AddItem(bell)

	out, err := HandleInteraction(ctx, &Command{Verb: "push", Target: "bell"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "reply", out,
		"Alice strikes the brass bell and the sound rolls across the camp.")
}
