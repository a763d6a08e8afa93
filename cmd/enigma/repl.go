package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/forcedentropy/enigma/internal/bombe"
	"github.com/forcedentropy/enigma/internal/enigma"
)

const helpText = `set-rotors [reflector] [left] [middle] [right]
	Description: sets the rotor settings for the Enigma
	Example: set-rotors B I IV III
	Args:
		[reflector] is one of 'B', 'C'
		[left] is one of 'I', 'II', 'III', 'IV', 'V'
		[middle] is one of 'I', 'II', 'III', 'IV', 'V'
		[right] is one of 'I', 'II', 'III', 'IV', 'V'
set-steckers [steckers]
	Description: sets the steckered letters for the Enigma
	Example: set-steckers AB CE FG HL PQ RT
encode [msg]
	Description: encodes the message using current Enigma settings
	Example: encode the message to encrypt
set-rings [left] [middle] [right]
	Description: sets the ring positions for the Enigma
	Example: set-rings a r z
	Args:
		[left] is a letter a-z
		[middle] is a letter a-z
		[right] is a letter a-z
set-rotations [left] [middle] [right]
	Description: sets the rotor rotations for the Enigma
	Example: set-rotations a l z
	Args:
		[left] is a letter a-z
		[middle] is a letter a-z
		[right] is a letter a-z
crack [cipher text] [crib]
	Description: cracks the message using the current Enigma settings
	Note: cipher text and crib length must match
	Example: crack XJQWE HELLO
farm-crack [cipher text] [crib]
	Description: cracks the message using all possible rotor orderings
	Note: cipher text and crib length must match
	Example: farm-crack XJQWE HELLO
enigma
	Description: Outputs current Enigma settings
quit
	Description: Quits the application`

type replCmd struct{}

// Run drops into a line-oriented REPL reproducing
// original_source/src/Main.java's command grammar, dispatching every
// command straight into internal/enigma or internal/bombe.
func (c *replCmd) Run(ctx *context) error {
	machine, err := enigma.NewBuilder().
		SetBoard(nil).
		SetReflector("B").
		SetLeft("I", 'a', 'a').
		SetMiddle("II", 'a', 'a').
		SetRight("III", 'a', 'a').
		Build()
	if err != nil {
		return err
	}

	fmt.Println("Welcome to Enigma! Type help for a list of commands.")
	fmt.Println("Enigma config:", machine.Configuration())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())

		switch {
		case cmd == "help":
			fmt.Println(helpText)
		case cmd == "quit":
			return nil
		case cmd == "enigma":
			fmt.Println("Enigma config:", machine.Configuration())
		case strings.HasPrefix(cmd, "set-rotors "):
			if err := replSetRotors(machine, cmd); err != nil {
				fmt.Println("Incorrect syntax:", err)
				continue
			}
			fmt.Println("Enigma config:", machine.Configuration())
		case strings.HasPrefix(cmd, "set-steckers "):
			if err := machine.SetPlugboard(strings.TrimPrefix(cmd, "set-steckers ")); err != nil {
				fmt.Println("Incorrect syntax:", err)
				continue
			}
			fmt.Println("Enigma config:", machine.Configuration())
		case strings.HasPrefix(cmd, "set-rings "):
			if err := replSetTriple(strings.TrimPrefix(cmd, "set-rings "), machine.SetRings); err != nil {
				fmt.Println("Incorrect syntax:", err)
				continue
			}
			fmt.Println("Enigma config:", machine.Configuration())
		case strings.HasPrefix(cmd, "set-rotations "):
			if err := replSetTriple(strings.TrimPrefix(cmd, "set-rotations "), machine.SetRotations); err != nil {
				fmt.Println("Incorrect syntax:", err)
				continue
			}
			fmt.Println("Enigma config:", machine.Configuration())
		case strings.HasPrefix(cmd, "encode "):
			fmt.Println(machine.Encode(strings.TrimPrefix(cmd, "encode ")))
		case strings.HasPrefix(cmd, "farm-crack "):
			replFarmCrack(ctx, strings.ToLower(strings.TrimPrefix(cmd, "farm-crack ")))
		case strings.HasPrefix(cmd, "crack "):
			replCrack(ctx, machine, strings.ToLower(strings.TrimPrefix(cmd, "crack ")))
		case cmd == "":
			// ignore blank lines
		default:
			fmt.Println("Command not found")
		}
	}

	return scanner.Err()
}

func replSetRotors(machine *enigma.Enigma, cmd string) error {
	params := strings.Fields(strings.TrimPrefix(cmd, "set-rotors "))
	if len(params) != 4 {
		return fmt.Errorf("expected 4 arguments, got %d", len(params))
	}

	built, err := enigma.NewBuilder().
		SetReflector(params[0]).
		SetLeft(params[1], 'a', 'a').
		SetMiddle(params[2], 'a', 'a').
		SetRight(params[3], 'a', 'a').
		Build()
	if err != nil {
		return err
	}

	machine.SetRotors(*built.Reflector(), *built.Left(), *built.Middle(), *built.Right())
	return nil
}

func replSetTriple(args string, set func(l, m, r int)) error {
	params := strings.Fields(args)
	if len(params) != 3 {
		return fmt.Errorf("expected 3 arguments, got %d", len(params))
	}

	letters := make([]int, 3)
	for i, p := range params {
		p = strings.ToLower(p)
		if len(p) == 0 || p[0] < 'a' || p[0] > 'z' {
			return fmt.Errorf("argument %q is not a letter a-z", params[i])
		}
		letters[i] = int(p[0] - 'a')
	}

	set(letters[0], letters[1], letters[2])
	return nil
}

func replCrack(ctx *context, machine *enigma.Enigma, args string) {
	params := strings.Fields(args)
	if len(params) != 2 {
		fmt.Println("Incorrect syntax: expected crack [cipher text] [crib]")
		return
	}

	b, err := bombe.New(machine, params[0], params[1], true)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	stops, err := b.Run()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	printStops(stops, false)
}

func replFarmCrack(ctx *context, args string) {
	params := strings.Fields(args)
	if len(params) != 2 {
		fmt.Println("Incorrect syntax: expected farm-crack [cipher text] [crib]")
		return
	}

	farm := bombe.NewFarm(params[0], params[1], true, ctx.logger)
	stops, err := farm.Run()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	printStops(stops, true)
}
