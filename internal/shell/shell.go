// Package shell runs the interactive shopping-list menu on top of a
// textlist.List.
//
// Positions shown to and read from the user are 1-based; the shell converts
// them before calling the list.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/jask/shoplist/internal/config"
	"github.com/jask/shoplist/internal/textlist"
)

var errExit = errors.New("exit requested")

// Shell reads commands from in and writes prompts and results to out.
type Shell struct {
	in   *bufio.Reader
	out  io.Writer
	list *textlist.List
	// prev is the snapshot restored by undo; nil when there is nothing to undo.
	prev *textlist.List
	cfg  config.Config
	log  zerolog.Logger
	th   theme
}

func New(in io.Reader, out io.Writer, list *textlist.List, cfg config.Config, log zerolog.Logger) *Shell {
	return &Shell{
		in:   bufio.NewReader(in),
		out:  out,
		list: list,
		cfg:  cfg,
		log:  log,
		th:   newTheme(out, cfg.UI.Color),
	}
}

// List returns the list the shell currently operates on. Undo swaps it, so
// callers should not hold on to an earlier result.
func (s *Shell) List() *textlist.List { return s.list }

// Run collects the initial entries and then serves the menu until the user
// exits or the input ends. Both cases return nil.
func (s *Shell) Run() error {
	err := s.run()
	switch {
	case err == nil, errors.Is(err, errExit):
	case errors.Is(err, io.EOF):
		s.log.Info().Msg("input closed")
	default:
		return fmt.Errorf("shell: %w", err)
	}
	s.println(s.th.muted, "Program is shutting down..")
	s.log.Info().Int("size", s.list.Len()).Msg("session finished")
	return nil
}

func (s *Shell) run() error {
	s.println(s.th.title, "Welcome to your Shopping List app.")
	count, err := s.readNumber("How many entries would you like to add to your shopping list?", 0)
	if err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		item, err := s.readLine(fmt.Sprintf("Enter %d. :", i))
		if err != nil {
			return err
		}
		s.list.Add(item)
		s.log.Info().Str("item", item).Msg("initial entry added")
	}

	s.println(s.th.title, "Your shopping list:")
	s.display()

	for {
		s.printMenu()
		choice, err := s.readNumber(fmt.Sprintf("Choose an option (1-%d):", len(menu)), 1)
		if err != nil {
			return err
		}
		if err := s.dispatch(choice); err != nil {
			return err
		}
	}
}

// dispatch runs one menu option. Only exit and input errors are returned;
// list errors are reported to the user and the loop carries on.
func (s *Shell) dispatch(choice int) error {
	opt, ok := lookup(choice)
	if !ok {
		s.printf(s.th.err, "Invalid option. Please choose a valid option (1-%d).", len(menu))
		return nil
	}
	s.log.Debug().Int("option", choice).Str("action", opt.label).Msg("menu selection")

	var snapshot *textlist.List
	if opt.mutates {
		snapshot = s.list.Clone()
	}
	changed, err := opt.run(s)
	if err != nil {
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			return err
		}
		s.report(err)
		return nil
	}
	if changed {
		if snapshot != nil {
			s.prev = snapshot
		}
		s.log.Info().Str("action", opt.label).Int("size", s.list.Len()).Msg("list changed")
	}
	return nil
}

func (s *Shell) report(err error) {
	s.log.Warn().Err(err).Msg("list operation failed")

	var ie *textlist.IndexError
	if errors.As(err, &ie) {
		s.printf(s.th.err, "There is no item at position %d (the list has %d %s).",
			ie.Index+1, ie.Len, plural(ie.Len, "item", "items"))
		return
	}
	s.printf(s.th.err, "Error: %v", err)
}

func (s *Shell) display() {
	if s.list.IsEmpty() {
		s.println(s.th.muted, "Your shopping list is empty.")
		return
	}
	for i, item := range s.list.All() {
		fmt.Fprintln(s.out, s.th.index.Render(fmt.Sprintf("%d.", i+1))+" "+s.th.item.Render(item))
	}
}

func (s *Shell) notFound(item string) {
	s.printf(s.th.warn, "'%s' not found in the list.", item)
	if best, ok := closest(s.list, item, s.cfg.Search.SuggestDistance); ok {
		s.printf(s.th.muted, "Did you mean '%s'?", best)
	}
}
