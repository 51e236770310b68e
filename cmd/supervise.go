package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rootsv/arbiter"
	"rootsv/bringup"
	"rootsv/config"
	"rootsv/events"
	"rootsv/fillerfd"
	"rootsv/logging"
	"rootsv/logpipe"
	"rootsv/platform"
	"rootsv/registry"
	"rootsv/svcmgr"
)

// runSupervise is rootCmd's default action: the one a kernel execs as
// PID 1, or an operator execs to start a per-user session root. It
// performs boot-time bring-up, the filler-fd reservation, and the
// event-loop wiring, then blocks in arbiter.Run until a terminal verb
// is latched.
func runSupervise(cmd *cobra.Command, args []string) error {
	mode := platform.DetectMode()
	// The default logger already carries the mode attribute; NewLogger
	// attached it when setupLogging built it.
	log := logging.Default()

	result, err := bringup.Run(mode, os.Args, bringup.Deps{
		Mounter: platform.NewMounter(),
		CGroup:  platform.NewCGroup(),
		Clock:   platform.NewClock(),
		Log:     log,
	})
	if err != nil {
		return fmt.Errorf("bring-up: %w", err)
	}

	// fillerfd.Reserve runs only after bring-up's last-resort I/O step
	// has guaranteed 0/1/2 exist; it claims whatever low descriptors
	// that step left unopened (normally just 3, the listen socket slot).
	reservation, err := fillerfd.Reserve()
	if err != nil {
		return fmt.Errorf("reserve filler descriptors: %w", err)
	}

	pipe, err := logpipe.New()
	if err != nil {
		return fmt.Errorf("create log pipe: %w", err)
	}
	if err := pipe.InstallWriteEnd(1, 2); err != nil {
		return fmt.Errorf("install log pipe write end: %w", err)
	}

	socket, err := svcmgr.Listen(config.ServiceManagerSocketPath(mode))
	if err != nil {
		return fmt.Errorf("listen service-manager socket: %w", err)
	}
	defer socket.Close()
	sockFile, err := socket.File()
	if err != nil {
		return fmt.Errorf("dup listen-socket descriptor: %w", err)
	}
	if err := reservation.Fill(svcmgr.ListenSocketFD, sockFile); err != nil {
		sockFile.Close()
		return fmt.Errorf("fill listen-socket descriptor: %w", err)
	}
	sockFile.Close()

	fifoFile, err := events.OpenFIFO(config.ControlFIFOPath(mode))
	if err != nil {
		return fmt.Errorf("open control fifo: %w", err)
	}
	defer fifoFile.Close()

	queue, err := platform.NewEventQueue()
	if err != nil {
		return fmt.Errorf("create event queue: %w", err)
	}
	defer queue.Close()

	pending := events.New()
	pending.Init.Store(true)
	intake := events.NewIntake(queue, mode, pending, log)
	if err := intake.WatchSignals(platform.CandidateSignals(mode)); err != nil {
		return fmt.Errorf("watch signals: %w", err)
	}
	if err := intake.WatchFIFO(int(fifoFile.Fd())); err != nil {
		return fmt.Errorf("watch control fifo: %w", err)
	}

	cfg := arbiter.Config{
		Mode:     mode,
		Intake:   intake,
		Pending:  pending,
		Registry: registry.New(),
		Pipe:     pipe,
		Saved:    result.Saved,
		Socket:   socket,
		Env:      svcmgr.SanitizeEnviron(os.Environ()),
		FIFOFD:   int(fifoFile.Fd()),
		RootArgv: os.Args,
		Log:      log,
	}

	// SIGINT/SIGTERM are loop events, not process-cancellation requests:
	// the dialect folds them into halt for UserSessionRoot, and the loop
	// unwinds through its own terminal condition. No NotifyContext here.
	return arbiter.New(cfg).Run(cmd.Context())
}
