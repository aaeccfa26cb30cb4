// Copyright 2026, The zen Authors

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/steffenhaug/zen/config"
	"github.com/steffenhaug/zen/cpu"
	"github.com/steffenhaug/zen/display"
	"github.com/steffenhaug/zen/emulator"
)

func main() {
	var configPath string
	var verbose bool
	var listing bool
	var hz uint
	var scale int

	flag.StringVar(&configPath, "c", "", ".toml or .star configuration file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&listing, "l", false, "List the program, do not execute")
	flag.UintVar(&hz, "hz", 0, "JUMPDT frequency override")
	flag.IntVar(&scale, "scale", 0, "Window scale override")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	path := "test.zen"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}

	cfg := config.Default()
	if len(configPath) != 0 {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if verbose {
		cfg.Verbose = true
	}
	if hz != 0 {
		cfg.Frequency = hz
	}
	if scale != 0 {
		cfg.Scale = scale
	}
	err := cfg.Validate()
	if err != nil {
		log.Fatal(err)
	}

	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	prog, err := cpu.ReadProgram(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if listing {
		err = prog.Listing(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	emu := emulator.NewEmulator(cfg)
	emu.Load(prog)

	disp, err := display.New(cfg, display.Console{
		Frames:  emu.Display,
		Buttons: emu.Buttons(),
		Input:   &emu.Controller,
		Stop:    emu.Stop,
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- emu.Run(ctx)
	}()

	err = disp.Run()
	if err != nil {
		emu.Stop()
		log.Printf("display: %v", err)
	}

	err = <-result
	reason := emulator.Reason(err)
	if reason.Fault() {
		log.Printf("%v: %v", path, err)
		log.Print(emu.Cpu)
		cancel()
		os.Exit(1)
	}

	if cfg.Verbose {
		log.Printf("%v: %v", path, reason)
	}
}
