package main

import (
	"io"
	"os"

	"github.com/selectdb/stock_observer/pkg/xerror"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// waitForKey blocks until a single key is pressed. When in is not a terminal
// one byte, or EOF, is enough.
func waitForKey(in *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return readOne(in)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return xerror.Wrap(err, xerror.Console, "make terminal raw failed")
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			log.Warnf("restore terminal failed: %v", err)
		}
	}()

	return readOne(in)
}

func readOne(r io.Reader) error {
	var buf [1]byte
	if _, err := r.Read(buf[:]); err != nil && err != io.EOF {
		return xerror.Wrap(err, xerror.Console, "read key failed")
	}
	return nil
}
