package display

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

// Profiler captures a CPU profile when the tick rate falls behind the target
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	logger          *log.Logger

	// Ticks below threshold count as a drop once warmup frames have passed
	threshold float64
	warmup    int
	frames    int
}

// NewProfiler creates a profiler writing into dir. A drop is a measured tick
// rate below 90% of targetTPS.
func NewProfiler(dir string, targetTPS int, logger *log.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		logger:          logger,
		threshold:       float64(targetTPS) * 0.9,
		warmup:          3 * targetTPS, // ignore the first 3 seconds after launch
	}, nil
}

// Observe is called once per frame with the measured tick rate
func (p *Profiler) Observe(tps float64) {
	p.frames++
	if p.frames < p.warmup || tps >= p.threshold {
		return
	}
	err := p.CaptureProfile(fmt.Sprintf("tps%.0f", tps))
	if err != nil && !errors.Is(err, errCaptureBusy) {
		p.logger.Printf("profile capture failed: %v", err)
	}
}

var errCaptureBusy = errors.New("capture busy")

// CaptureProfile records a CPU profile in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling || time.Since(p.lastCaptureTime) < p.captureCooldown {
		return errCaptureBusy
	}

	path := filepath.Join(p.profilesDir, fmt.Sprintf("tps-drop-%s-%s.cpu.prof", time.Now().Format("20060102-150405"), reason))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return fmt.Errorf("start CPU profile: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	p.logger.Printf("tick rate dropped (%s), profiling for %v", reason, p.captureDuration)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		time.Sleep(p.captureDuration)
		pprof.StopCPUProfile()
		file.Close()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.logger.Printf("CPU profile saved to %s (heap %d KB, %d GCs); view with: go tool pprof -http=:8080 %s",
			path, m.HeapAlloc/1024, m.NumGC, path)

		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()
	return nil
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Wait blocks until any running capture has been written
func (p *Profiler) Wait() {
	p.wg.Wait()
}
