// cmd/uno/host.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/game"
	"github.com/jason-s-yu/uno/internal/middleware"
	"github.com/sirupsen/logrus"
)

// errUnknownCommand is reported for input that names no command.
var errUnknownCommand = errors.New("unknown command")

// deliverer is satisfied by cache.Outbox.
type deliverer interface {
	Deliver(ctx context.Context, matchID uuid.UUID, playerID int, msgs []string) error
}

// host drives one match from line-oriented input.
type host struct {
	match    *game.Match
	matchID  uuid.UUID
	outbox   deliverer // nil prints messages instead
	out      io.Writer
	logger   *logrus.Logger
	commands map[string]middleware.CommandFunc
}

func newHost(m *game.Match, matchID uuid.UUID, outbox deliverer, out io.Writer, logger *logrus.Logger) *host {
	h := &host{
		match:   m,
		matchID: matchID,
		outbox:  outbox,
		out:     out,
		logger:  logger,
	}
	h.commands = map[string]middleware.CommandFunc{
		"play":    h.play,
		"draw":    h.simple((*game.Engine).Draw),
		"pass":    h.simple((*game.Engine).Pass),
		"uno":     h.withID((*game.Engine).SayUno),
		"callout": h.withID((*game.Engine).Callout),
		"drop":    h.drop,
		"rule":    h.rule,
		"rules":   h.rules,
		"table":   h.simple((*game.Engine).TableView),
		"score":   h.score,
		"hand":    h.hand,
	}
	for name, cmd := range h.commands {
		h.commands[name] = middleware.Chain(cmd, middleware.LogCommand(logger, name))
	}
	return h
}

// exec runs one input line. It reports false once the host should stop.
func (h *host) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name := strings.ToLower(fields[0])
	if name == "quit" || name == "exit" {
		return false
	}

	cmd, ok := h.commands[name]
	if !ok {
		fmt.Fprintf(h.out, "%s: %s\n", errUnknownCommand, fields[0])
		return true
	}
	out, err := cmd(fields[1:])
	switch {
	case game.IsFatal(err):
		fmt.Fprintf(h.out, "The game cannot continue: %s\n", err)
		h.flush(ctx)
		return false
	case game.IsMisuse(err):
		h.logger.WithError(err).WithField("command", name).Warn("command misuse")
		fmt.Fprintln(h.out, err)
	case err != nil:
		fmt.Fprintln(h.out, err)
	default:
		fmt.Fprintln(h.out, paintText(out))
	}
	h.flush(ctx)

	over := false
	_ = h.match.Do(func(e *game.Engine) error {
		over = e.Over()
		return nil
	})
	return !over
}

// flush hands every player's queued messages to the outbox, or prints them.
func (h *host) flush(ctx context.Context) {
	type batch struct {
		id   int
		name string
		msgs []string
	}
	var batches []batch
	_ = h.match.Do(func(e *game.Engine) error {
		for _, p := range e.Players() {
			msgs, err := e.DrainMessages(p.ID)
			if err != nil || len(msgs) == 0 {
				continue
			}
			batches = append(batches, batch{p.ID, p.Username, msgs})
		}
		return nil
	})

	for _, b := range batches {
		if h.outbox != nil {
			err := h.outbox.Deliver(ctx, h.matchID, b.id, b.msgs)
			if err == nil {
				continue
			}
			h.logger.WithError(err).WithField("player", b.id).Error("outbox delivery failed")
		}
		for _, m := range b.msgs {
			fmt.Fprintf(h.out, "[to %s] %s\n", b.name, paintText(m))
		}
	}
}

func (h *host) simple(fn func(*game.Engine) (string, error)) middleware.CommandFunc {
	return func([]string) (out string, err error) {
		err = h.match.Do(func(e *game.Engine) error {
			out, err = fn(e)
			return err
		})
		return out, err
	}
}

func (h *host) withID(fn func(*game.Engine, int) (string, error)) middleware.CommandFunc {
	return func(args []string) (out string, err error) {
		id, err := parseID(args)
		if err != nil {
			return "", err
		}
		err = h.match.Do(func(e *game.Engine) error {
			out, err = fn(e, id)
			return err
		})
		return out, err
	}
}

func (h *host) play(args []string) (out string, err error) {
	if len(args) == 0 {
		return "", errors.New("usage: play <card>, e.g. \"play r5\" or \"play wild blue\"")
	}
	err = h.match.Do(func(e *game.Engine) error {
		out, err = e.Play(strings.Join(args, " "))
		return err
	})
	return out, err
}

func (h *host) drop(args []string) (out string, err error) {
	id, err := parseID(args)
	if err != nil {
		return "", err
	}
	err = h.match.Do(func(e *game.Engine) error {
		p, err := e.Player(id)
		if err != nil {
			return err
		}
		if err := e.RemovePlayer(id); err != nil {
			return err
		}
		out = fmt.Sprintf("%s left the game.", p.Username)
		if e.Over() {
			out += "\n\n" + e.Scoreboard()
		}
		return nil
	})
	return out, err
}

// rule shows a rule, or sets it when the last argument is a number:
// "rule draws skip" or "rule draws skip 0".
func (h *host) rule(args []string) (out string, err error) {
	if len(args) == 0 {
		return "", errors.New("usage: rule <name> [value]")
	}
	name := strings.Join(args, " ")
	value, convErr := strconv.Atoi(args[len(args)-1])
	set := convErr == nil && len(args) > 1
	if set {
		name = strings.Join(args[:len(args)-1], " ")
	}
	err = h.match.Do(func(e *game.Engine) error {
		if set {
			out, err = e.SetRule(name, value)
		} else {
			out, err = e.ShowRule(name)
		}
		return err
	})
	return out, err
}

func (h *host) rules([]string) (out string, err error) {
	err = h.match.Do(func(e *game.Engine) error {
		out = e.ShowAllRules()
		return nil
	})
	return out, err
}

func (h *host) score([]string) (out string, err error) {
	err = h.match.Do(func(e *game.Engine) error {
		out = e.Scoreboard()
		return nil
	})
	return out, err
}

// hand shows the current player's cards and the discard top.
func (h *host) hand([]string) (out string, err error) {
	err = h.match.Do(func(e *game.Engine) error {
		p, err := e.CurrentPlayer()
		if err != nil {
			return err
		}
		top, err := e.CurrentDiscardTop()
		if err != nil {
			return err
		}
		out = fmt.Sprintf("%s's hand: %s\nLast played: %s", p.Username, renderHand(p.Hand), paintCard(top))
		return nil
	})
	return out, err
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected a single player id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid player id %q", args[0])
	}
	return id, nil
}
