package bombe

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/forcedentropy/enigma/internal/enigma"
	"github.com/forcedentropy/enigma/internal/plugboard"
	"github.com/forcedentropy/enigma/internal/rotor"
)

// Farm sweeps every rotor-order permutation in parallel (spec.md §4.11,
// §5): shared-nothing data parallelism, one goroutine per rotor order,
// each owning its own Bombe, Scrambler cache, and wire buffer.
type Farm struct {
	cipherText string
	crib       string
	check      bool
	logger     zerolog.Logger
}

// NewFarm builds a farm for a ciphertext/crib pair.
func NewFarm(cipherText, crib string, check bool, logger zerolog.Logger) *Farm {
	return &Farm{cipherText: cipherText, crib: crib, check: check, logger: logger}
}

type rotorOrder struct {
	left, middle, right int
}

// rotorOrders enumerates the 5*4*3 = 60 distinct (left, middle, right)
// index triples into rotor.Wheels, matching
// original_source/src/BombeFarm.java's triple nested loop.
func rotorOrders() []rotorOrder {
	var orders []rotorOrder
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				continue
			}
			for k := 0; k < 5; k++ {
				if k == i || k == j {
					continue
				}
				orders = append(orders, rotorOrder{i, j, k})
			}
		}
	}
	return orders
}

// Run dispatches one task per rotor order and joins on all of them before
// returning. Per spec.md §4.11 and §9, the reflector is always B: every
// worker builds its machine with ReflectorB and no other reflector is tried.
func (f *Farm) Run() ([]Stop, error) {
	runID := uuid.New()
	logger := f.logger.With().Str("farm_run", runID.String()).Logger()

	orders := rotorOrders()
	logger.Info().Int("rotor_orders", len(orders)).Msg("starting bombe farm sweep")

	results := make(chan []Stop, len(orders))
	var wg sync.WaitGroup

	for _, order := range orders {
		wg.Add(1)
		go func(order rotorOrder) {
			defer wg.Done()
			results <- f.runOne(logger, order)
		}(order)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []Stop
	for stops := range results {
		all = append(all, stops...)
	}

	logger.Info().Int("stops", len(all)).Msg("bombe farm sweep complete")

	return all, nil
}

// runOne builds an independent Enigma/Bombe for one rotor order and runs
// its sweep, recovering from any panic so one worker's bug cannot crash
// the farm (spec.md §7's propagation policy for InternalInvariantViolation).
func (f *Farm) runOne(logger zerolog.Logger, order rotorOrder) (stops []Stop) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Int("left", order.left).Int("middle", order.middle).Int("right", order.right).
				Msg("bombe worker panicked, skipping this rotor order")
			stops = nil
		}
	}()

	left := rotor.New(rotor.Wheels[order.left], 0, 0)
	middle := rotor.New(rotor.Wheels[order.middle], 0, 0)
	right := rotor.New(rotor.Wheels[order.right], 0, 0)
	reflector := rotor.New(rotor.ReflectorB, 0, 0)

	machine := enigma.New(plugboard.New(), reflector, left, middle, right)

	b, err := New(machine, f.cipherText, f.crib, f.check)
	if err != nil {
		logger.Debug().Err(err).
			Int("left", order.left).Int("middle", order.middle).Int("right", order.right).
			Msg("bombe worker skipped: menu construction failed")
		return nil
	}

	result, err := b.Run()
	if err != nil {
		logger.Error().Err(err).
			Int("left", order.left).Int("middle", order.middle).Int("right", order.right).
			Msg("bombe worker sweep failed")
		return nil
	}

	return result
}
