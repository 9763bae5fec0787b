package workers

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/StreamnDad/streamn-scoreboard/pkg/control"
	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/queue"
)

// CommandReader parses operator command lines and queues them for the clock
// loop.
type CommandReader struct {
	reader       io.Reader
	commandQueue queue.Queue
}

type NewCommandReaderOptions struct {
	Reader       io.Reader
	CommandQueue queue.Queue
}

func NewCommandReader(opts NewCommandReaderOptions) *CommandReader {
	return &CommandReader{
		reader:       opts.Reader,
		commandQueue: opts.CommandQueue,
	}
}

// Start reads until the input ends or ctx is done. Blank lines and lines
// starting with # are skipped. Lines that fail to parse are logged and
// dropped. Cancellation is only noticed between lines.
func (r *CommandReader) Start(ctx context.Context) error {
	scanner := bufio.NewScanner(r.reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := control.Parse(line)
		if err != nil {
			log.Error("Failed to parse command: %v", err)
			continue
		}
		if err := r.commandQueue.Enqueue(cmd); err != nil {
			log.Error("Failed to queue %q: %v", line, err)
		}
	}
	return scanner.Err()
}
