package sources

import (
	"bufio"
	"context"
	"os"
)

// Stdin re-publishes lines read from standard input.
type Stdin struct {
	System string
}

func (s *Stdin) Run(ctx context.Context, pub Publisher) error {
	reader := bufio.NewScanner(os.Stdin)

	system := s.System
	if system == "" {
		system = "stdin"
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if !reader.Scan() {
			return reader.Err()
		}
		emit(pub, system, reader.Text())
	}
}
