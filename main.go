package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/debug"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The program image to load at 0x0000")
	steps := flag.Int("steps", 1, "The number of instructions to execute")
	entry := flag.String("entry", "", "The address of the first instruction, e.g. 0x0100")
	bootDefaults := flag.Bool("boot-defaults", false, "Start from the register state left by the boot ROM")
	asModel := flag.String("model", "dmg", "The model whose boot state to use with -boot-defaults")
	state := flag.String("state", "", "The state file to load")
	save := flag.String("save", "", "The file to save the final state to")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	serve := flag.String("serve", "", "Serve the instruction trace to websocket clients on the given address, e.g. :8090")
	dedupe := flag.Int("dedupe", 64, "Suppress trace lines repeating one of the last n lines sent")
	flag.Parse()

	logger := log.NewWithWriter(os.Stderr, *trace)
	if err := run(logger, options{
		rom:          *romFile,
		steps:        *steps,
		entry:        *entry,
		bootDefaults: *bootDefaults,
		model:        types.StringToModel(*asModel),
		state:        *state,
		save:         *save,
		trace:        *trace,
		serve:        *serve,
		dedupe:       *dedupe,
	}); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type options struct {
	rom, entry, state, save, serve string
	steps, dedupe                  int
	bootDefaults, trace            bool
	model                          types.Model
}

func run(logger log.Logger, o options) error {
	var rom []byte
	if o.rom != "" {
		var err error
		if rom, err = utils.LoadFile(o.rom); err != nil {
			return fmt.Errorf("loading rom: %w", err)
		}
	}

	opts := []cpu.Opt{cpu.WithLogger(logger)}
	if o.bootDefaults {
		opts = append(opts, cpu.PostBoot(o.model))
	}
	if o.state != "" {
		raw, err := utils.LoadFile(o.state)
		if err != nil {
			return fmt.Errorf("loading state: %w", err)
		}
		s := types.StateFromBytes(raw)
		opts = append(opts, cpu.WithState(s))
		defer func() {
			if err := s.Err(); err != nil {
				logger.Errorf("state %s: %v, missing registers were zeroed", o.state, err)
			}
		}()
	}
	if o.entry != "" {
		address, err := strconv.ParseUint(o.entry, 0, 16)
		if err != nil {
			return fmt.Errorf("parsing entry point: %w", err)
		}
		opts = append(opts, cpu.EntryPoint(uint16(address)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var tracers []cpu.Tracer
	if o.trace {
		tracers = append(tracers, func(t cpu.Trace) { logger.Debugf("%s", t) })
	}
	if o.serve != "" {
		srv := debug.NewServer(logger, o.dedupe)
		errs := make(chan error, 1)
		go func() { errs <- srv.ListenAndServe(ctx, o.serve) }()
		tracers = append(tracers, srv.Trace)

		// wait for a client so the trace is not lost
		logger.Infof("waiting for a client on %s", o.serve)
		for srv.Clients() == 0 {
			select {
			case err := <-errs:
				return fmt.Errorf("serving trace: %w", err)
			case <-ctx.Done():
				return nil
			case <-time.After(100 * time.Millisecond):
			}
		}
		defer func() {
			logger.Infof("finished, press Ctrl+C to stop serving")
			<-ctx.Done()
			<-errs
		}()
	}
	if len(tracers) > 0 {
		opts = append(opts, cpu.WithTracer(func(t cpu.Trace) {
			for _, tracer := range tracers {
				tracer(t)
			}
		}))
	}

	c := cpu.NewCPU(mmu.NewMMU(rom), opts...)
	n, err := c.Run(o.steps)

	final := types.NewState()
	c.Save(final)
	fmt.Printf("executed %d instructions\n%s SP: %04X PC: %04X\ndigest: %016x\n", n, c.Registers, c.SP, c.PC, final.Hash())

	if o.save != "" {
		if err := final.SaveToFile(o.save); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
	}

	if err != nil {
		return fmt.Errorf("stopped after %d instructions: %w", n, err)
	}
	return nil
}
