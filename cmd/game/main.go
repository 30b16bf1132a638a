package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/loop"
	"golang.org/x/term"
)

func main() {
	// GAME_SEED pins the spawn randomness, mostly for replaying a session.
	seed := int64(config.GetEnvInt("GAME_SEED", 0))

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Seed: seed}); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
