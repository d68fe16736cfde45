package main

import (
	"errors"
	"strings"

	"github.com/inoxlang/sandboxvec/internal/config"
	"github.com/inoxlang/sandboxvec/internal/memds"
	"github.com/inoxlang/sandboxvec/internal/usecases"
	"github.com/rs/zerolog"
)

type Report struct {
	SortedList   SortedListReport   `json:"sorted_list"`
	Stack        *memds.Vec[string] `json:"stack"`
	FrontInserts *memds.Vec[string] `json:"front_inserts"`
	Journal      JournalReport      `json:"journal"`
}

type SortedListReport struct {
	Values   *memds.Vec[int]       `json:"values"`
	Rejected *memds.Vec[int]       `json:"rejected"`
	Popped   *memds.Vec[int]       `json:"popped"`
	Bounds   *usecases.Bounds[int] `json:"bounds"`
}

type JournalReport struct {
	Entries    *memds.Vec[string] `json:"entries"`
	References *memds.Vec[string] `json:"references"`
}

func runDemo(cfg config.DemoConfig, logger zerolog.Logger) Report {
	var report Report

	//sorted list

	list := usecases.NewSortedList[int](logger.With().Str("usecase", "sorted-list").Logger())
	rejected := memds.NewVec[int]()
	popped := memds.NewVec[int]()

	for _, value := range cfg.SortedValues {
		if err := list.TryPush(value); err != nil {
			if !errors.Is(err, usecases.ErrOutOfOrder) {
				panic(err)
			}
			logger.Info().Int("value", value).Msg("out of order value rejected")
			rejected.Push(value)
		}
	}

	for i := 0; i < cfg.PopCount; i++ {
		value, ok := list.Pop()
		if !ok {
			logger.Info().Int("remaining-pops", cfg.PopCount-i).Msg("sorted list is empty")
			break
		}
		popped.Push(value)
	}

	report.SortedList = SortedListReport{
		Values:   memds.NewVec(list.Values()...),
		Rejected: rejected,
		Popped:   popped,
	}
	if bounds, ok := list.Bounds(); ok {
		report.SortedList.Bounds = &bounds
	}

	//stack: each pushed value is updated in place through the returned pointer

	stack := usecases.NewStringStack()
	for _, value := range cfg.StackValues {
		ref := stack.PushAndGetMut(value)
		*ref = strings.ToUpper(*ref)
	}
	report.Stack = memds.NewVec(stack.Values()...)

	//front insertions

	inserter := usecases.NewFrontInserter()
	for _, value := range cfg.FrontInsertions {
		inserter.InsertFront(value)
	}
	report.FrontInserts = memds.NewVec(inserter.Values()...)

	//journal

	journal := usecases.NewSharedJournal()
	references := memds.NewVec[string]()
	for _, entry := range cfg.JournalEntries {
		references.Push(journal.SaveAndReference(entry))
	}
	report.Journal = JournalReport{
		Entries:    memds.NewVec(journal.Entries()...),
		References: references,
	}

	logger.Debug().Msg("demo finished")
	return report
}
