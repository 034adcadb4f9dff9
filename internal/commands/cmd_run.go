package commands

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"pomotick/internal/audio"
	"pomotick/internal/core/inactivity"
	"pomotick/internal/core/session"
	"pomotick/internal/core/ticker"
	"pomotick/internal/core/timer"
	"pomotick/internal/platform"
	"pomotick/internal/storage"
	"pomotick/internal/storage/history"
	"pomotick/internal/ui/mainwindow"
	"pomotick/internal/ui/preferences"
	"pomotick/internal/ui/tray"
	"pomotick/pkg/logutils"
	"pomotick/resources"
)

// RunCmd starts the timer window. It is the default action.
type RunCmd struct {
	flags *Flags
}

// NewRunCmd creates the GUI command
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Run acquires the single-instance lock and runs the GUI until it quits.
func (cmd *RunCmd) Run(ctx context.Context, c *cli.Command) error {
	logger := log.Logger

	activate := make(chan struct{}, 1)
	guard, err := platform.AcquireSingleInstance(AppName, func() {
		select {
		case activate <- struct{}{}:
		default:
		}
	})
	if errors.Is(err, platform.ErrAlreadyRunning) {
		if err := platform.SignalRunningInstance(AppName); err != nil {
			logger.Warn().Err(err).Msg("signal running instance")
		}
		logger.Info().Msg("pomotick is already running")
		return nil
	}
	defer func() {
		_ = guard.Release()
		close(activate)
	}()

	store := storage.NewOptionsStore(cmd.flags.ConfigPath, logutils.Component(logger, "options"))
	options := store.Load()
	settings := storage.NewSettings(options)
	save := func() {
		if err := store.Save(settings.Snapshot()); err != nil {
			logger.Error().Err(err).Str("path", store.Path()).Msg("save options")
		}
	}

	assets, assetDir, err := resources.Locate(cmd.flags.DataDir)
	if err != nil {
		logger.Warn().Err(err).Msg("running without images and voice prompts")
	} else {
		logger.Debug().Str("dir", assetDir).Msg("using assets")
	}
	library := resources.NewLibrary(assets)

	fyneApp := app.NewWithID(AppID)
	icon, iconErr := library.Icon()
	if iconErr == nil {
		fyneApp.SetIcon(icon)
	}

	media := platform.NewMediaToggle(logutils.Component(logger, "media"))
	voice := audio.NewPlayer(assets, settings, nil, logutils.Component(logger, "audio"))

	var (
		view        *mainwindow.Window
		engine      *timer.Engine
		controller  *session.Controller
		trayManager *tray.Manager
		prefs       *preferences.Window
	)
	// Geometry is captured here while the native window still exists.
	quit := func() {
		settings.SetGeometry(view.Geometry())
		controller.Shutdown()
		fyneApp.Quit()
	}

	view = mainwindow.New(fyneApp, mainwindow.Config{Title: AppName, VoiceEnabled: options.VoiceEnabled}, library, mainwindow.Callbacks{
		OnInteraction: func() { controller.Interaction(time.Now()) },
		OnVoiceToggled: func(enabled bool) {
			settings.SetVoiceEnabled(enabled)
			save()
			if prefs != nil {
				prefs.Reload()
			}
		},
		OnStateChanged: func() {
			if trayManager != nil {
				trayManager.Update(engine.Status(), engine.Actions())
			}
		},
		OnPreferences: func() { prefs.Show() },
		OnClose:       quit,
	}, logutils.Component(logger, "window"))

	engine, err = timer.New(timer.Config{
		Durations: options.Durations,
		Prompts:   options.Prompts,
	}, timer.Collaborators{Display: view, Media: media, Voice: voice})
	if err != nil {
		return err
	}
	view.Bind(engine)

	monitorLogger := logutils.Component(logger, "inactivity")
	monitor := inactivity.New(options.Inactivity, options.Prompts.StillThere, inactivity.Dependencies{
		Engine:  engine,
		Voice:   voice,
		Media:   media,
		Confirm: view,
		Logger:  monitorLogger,
	}, time.Now())
	if options.SystemIdleProbe {
		monitor.SetIdleChecker(platform.NewIdleProvider())
	}
	controller = session.New(engine, monitor, logutils.Component(logger, "session"))

	currentValues := func() preferences.Values { return preferences.FromOptions(settings.Snapshot()) }
	prefs = preferences.New(fyneApp, currentValues, func(values preferences.Values) {
		settings.Update(func(options *storage.Options) { *options = values.Apply(*options) })
		snapshot := settings.Snapshot()
		if err := engine.SetDurations(snapshot.Durations); err != nil {
			logger.Warn().Err(err).Msg("rejecting durations")
		}
		monitor.SetConfig(snapshot.Inactivity)
		if snapshot.SystemIdleProbe {
			monitor.SetIdleChecker(platform.NewIdleProvider())
		} else {
			monitor.SetIdleChecker(nil)
		}
		view.SetVoiceEnabled(snapshot.VoiceEnabled)
		save()
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: view.Show,
			OnGo: func() {
				if err := engine.Go(); err != nil {
					logger.Debug().Err(err).Msg("go ignored")
				}
			},
			OnToggle:      engine.Toggle,
			OnSkip:        engine.Skip,
			OnReset:       engine.Reset,
			OnPreferences: prefs.Show,
			OnQuit:        quit,
		})
		if iconErr == nil {
			desktopApp.SetSystemTrayIcon(icon)
		}
	}

	recorderDone := cmd.startRecorder(engine, logger)

	controller.OnShutdown(save)

	go func() {
		for range activate {
			fyne.Do(view.Show)
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(func() {
		view.RestorePosition(options.Geometry)
	})
	fyneApp.Lifecycle().SetOnStopped(controller.Shutdown)

	controller.Run(ticker.New(ticker.Config{Interval: time.Second, Dispatch: fyne.Do}, controller.Tick))

	view.RestoreSize(options.Geometry)
	engine.Refresh()
	view.Show()
	fyneApp.Run()

	controller.Shutdown()
	recorderDone()
	return nil
}

// startRecorder writes finished intervals to the history database. The
// returned function waits for pending writes and closes the database.
func (cmd *RunCmd) startRecorder(engine *timer.Engine, logger zerolog.Logger) func() {
	db, err := history.Open(filepath.Join(cmd.flags.DataDir, history.FileName))
	if err != nil {
		logger.Warn().Err(err).Msg("interval history disabled")
		return func() {}
	}

	recorder := history.NewRecorder(history.NewRepository(db), logutils.Component(logger, "history"))
	events := engine.Subscribe(64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		recorder.Run(context.Background(), events)
	}()

	return func() {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			logger.Warn().Msg("history recorder did not finish")
		}
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("close history database")
		}
	}
}
