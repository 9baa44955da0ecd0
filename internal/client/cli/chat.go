package cli

import (
	"context"
	"strings"
)

// Chat sends one message to the agent and prints the reply. Without
// arguments the message is prompted for.
func (a *App) Chat(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		var err error
		if text, err = getSimpleText(a.reader, "Message", a.out); err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) == "" {
		return usage("chat <message>")
	}

	reply, err := a.api.SendChat(ctx, text)
	if err != nil {
		return err
	}
	printMessage(a.out, *reply)
	return nil
}

// History prints the conversation with the agent, oldest first.
func (a *App) History(ctx context.Context) error {
	msgs, err := a.api.ChatHistory(ctx)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		printMessage(a.out, m)
	}
	return nil
}
