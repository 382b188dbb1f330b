// Command feedback submits a feedback message to a Mail Guard backend from
// the terminal. It drives the client SDK the same way the landing-page form
// does: validation first, then submission, with an optional local fallback
// when the backend is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mailguard-live/mailguard-backend/client"
	apperrors "github.com/mailguard-live/mailguard-backend/errors"
	"github.com/mailguard-live/mailguard-backend/types"
)

func main() {
	var (
		addr        = flag.String("addr", "http://localhost:8080", "base URL of the feedback API")
		name        = flag.String("name", "", "sender display name")
		email       = flag.String("email", "", "sender email address")
		message     = flag.String("message", "", "message body")
		fallbackDir = flag.String("fallback-dir", "", "directory for local fallback storage; empty disables the fallback and failures are reported as errors")
		timeout     = flag.Duration("timeout", 15*time.Second, "overall submission timeout")
	)
	flag.Parse()

	opts := []client.Option{}
	if *fallbackDir != "" {
		opts = append(opts, client.WithFallbackStore(client.NewFallbackStore(*fallbackDir)))
	}
	c := client.New(*addr, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	msg, err := c.CreateMessage(ctx, types.MessageCreate{
		Name:    *name,
		Email:   *email,
		Message: *message,
	})
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type == apperrors.ValidationError {
			fmt.Fprintf(os.Stderr, "invalid submission: %s\n", appErr.Message)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "submission failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Message sent. id=%s createdAt=%s\n", msg.ID, msg.CreatedAt.Format(time.RFC3339))
}
