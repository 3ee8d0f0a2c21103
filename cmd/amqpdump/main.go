// Command amqpdump decodes a stream of AMQP 0-9-1 frames from a file or
// stdin and prints a one-line summary per frame, the way a protocol
// inspection tool built on this codec would. It exists to exercise
// stream.Adapter end to end, the one outer surface this module adds
// beyond the pure codec library.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/amqplog"
	"github.com/amqpr/amqp-codec/frame"
	"github.com/amqpr/amqp-codec/stream"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "amqpdump [file]",
		Short: "Decode and print AMQP 0-9-1 frames from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return dump(in, verbose)
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decode diagnostics to stderr")
	return root
}

// dump reads all of in, then repeatedly decodes frames from the front of
// the buffer the way a transport would: growing the buffer is not needed
// here because the whole input is already available, but the Decode/
// consumed-bytes protocol is exactly what an incremental reader would
// follow.
func dump(in io.Reader, verbose bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	logger := amqplog.Nop()
	if verbose {
		l, err := amqplog.NewDevelopment()
		if err != nil {
			return err
		}
		defer l.Sync()
		logger = l
	}

	adapter := stream.New(stream.Options{Logger: logger})
	runID := uuid.New().String()

	count := 0
	for len(data) > 0 {
		f, consumed, err := adapter.Decode(data)
		if err == amqperr.ErrNeedMore {
			return fmt.Errorf("amqpdump[%s]: trailing %d bytes do not form a complete frame", runID, len(data))
		}
		if err != nil {
			return fmt.Errorf("amqpdump[%s]: frame %d: %w", runID, count, err)
		}
		printFrame(count, f)
		data = data[consumed:]
		count++
	}

	fmt.Printf("amqpdump[%s]: %d frame(s)\n", runID, count)
	return nil
}

func printFrame(index int, f frame.Frame) {
	switch f.Type {
	case frame.TypeMethod:
		fmt.Printf("#%d channel=%d method class=%d method=%d\n", index, f.Channel, f.Method.ClassID(), f.Method.MethodID())
	case frame.TypeContentHeader:
		fmt.Printf("#%d channel=%d content-header class=%d body_size=%d\n", index, f.Channel, f.Header.ClassID, f.Header.BodySize)
	case frame.TypeContentBody:
		fmt.Printf("#%d channel=%d content-body bytes=%d\n", index, f.Channel, len(f.Body.Data))
	case frame.TypeHeartbeat:
		fmt.Printf("#%d channel=%d heartbeat\n", index, f.Channel)
	}
}
