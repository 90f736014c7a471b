package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"waveshooter/gamelog"
)

var (
	ErrProfilerCooldown = errors.New("capture on cooldown")
	ErrProfilerBusy     = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	log             gamelog.Logger
}

// NewProfiler creates a profiler that writes into dir
func NewProfiler(dir string, log gamelog.Logger) *Profiler {
	if log == nil {
		log = gamelog.Nop()
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		log:             log,
	}
}

// CaptureProfile starts a background capture unless one is running or the cooldown is active
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrProfilerCooldown, since.Round(time.Millisecond))
	}
	if p.isProfiling {
		return ErrProfilerBusy
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.log.Error("cpu profile failed", "err", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.log.Error("trace failed", "err", err)
			}
		}()
		wg.Wait()

		p.summarize(baseName)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.log.Info("cpu profile saved", "path", path)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.log.Info("trace saved", "path", path)
	return nil
}

// summarize logs the profile size and a memory snapshot
func (p *Profiler) summarize(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		p.log.Warn("could not inspect profile", "err", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("profile captured",
		"profile", path,
		"sizeKB", info.Size()/1024,
		"view", "go tool pprof -http=:8080 "+path,
		"allocKB", m.Alloc/1024,
		"sysKB", m.Sys/1024,
		"numGC", m.NumGC,
		"heapObjects", m.HeapObjects,
	)
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
