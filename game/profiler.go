package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"portfoliohud/logger"
)

// fpsWindow is how often the FPS figure is recomputed, in seconds.
const fpsWindow = 0.5

// FPSMonitor averages frame times and flags drops below a threshold.
type FPSMonitor struct {
	threshold float64
	cooldown  time.Duration
	warmup    time.Duration

	fps     float64
	counter int
	timer   float64

	start    time.Time
	lastDrop time.Time
	now      func() time.Time
}

// NewFPSMonitor ignores drops during warmup and reports at most one drop per
// cooldown. A threshold of 0 never reports.
func NewFPSMonitor(threshold float64, cooldown, warmup time.Duration) *FPSMonitor {
	m := &FPSMonitor{
		threshold: threshold,
		cooldown:  cooldown,
		warmup:    warmup,
		fps:       60,
		now:       time.Now,
	}
	m.start = m.now()
	return m
}

// FPS returns the last computed rate.
func (m *FPSMonitor) FPS() float64 { return m.fps }

// Observe records one update of dt seconds. It reports true when a fresh FPS
// figure fell below the threshold outside warmup and cooldown.
func (m *FPSMonitor) Observe(dt float64) bool {
	m.timer += dt
	m.counter++
	if m.timer < fpsWindow {
		return false
	}

	m.fps = float64(m.counter) / m.timer
	m.counter = 0
	m.timer = 0

	now := m.now()
	if m.fps >= m.threshold || now.Sub(m.start) < m.warmup {
		return false
	}
	if !m.lastDrop.IsZero() && now.Sub(m.lastDrop) < m.cooldown {
		return false
	}
	m.lastDrop = now
	return true
}

// Profiler captures a CPU profile and an execution trace when asked.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	profilesDir     string
	captureDuration time.Duration
	log             *logger.Logger
}

// NewProfiler writes captures to dir, creating it if needed.
func NewProfiler(dir string, log *logger.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		log:             log,
	}, nil
}

// CaptureProfile starts a capture in the background. It fails if one is
// already running.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	p.isProfiling = true

	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

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
				p.log.Error("profiler: cpu profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.log.Error("profiler: trace: %v", err)
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.log.Info("profiler: CPU profile saved to %s", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.log.Info("profiler: trace saved to %s", tracePath)
	return nil
}

// analyzeProfile logs where the capture went and the heap at that moment.
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		p.log.Warn("profiler: could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("profiler: %s (%.2f KB), view with: go tool pprof -http=:8080 %s",
		baseName, float64(info.Size())/1024, profilePath)
	p.log.Info("profiler: alloc=%d KB sys=%d KB numGC=%d heapObjects=%d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
