package hasher

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/logger"
)

type Task struct {
	Path string
	Size int64
}

type Result struct {
	Path   string
	Size   int64
	Digest uint64
	Err    error
}

// Pool hashes files on a fixed set of goroutines. Submit all tasks,
// call Close, then drain Results until it is closed.
type Pool struct {
	fs      afero.Fs
	workers int
	tasks   chan Task
	results chan Result
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewPool(fs afero.Fs, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		fs:      fs,
		workers: workers,
		tasks:   make(chan Task, internal.DefaultBufferSize),
		results: make(chan Result, internal.DefaultBufferSize),
	}
}

func (p *Pool) Start() error {
	logger.Get().Debug().Int("workers", p.workers).Msg("starting hash pool")

	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return err
	}
	p.pool = pool

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			return err
		}
	}
	return nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		digest, err := Sum(p.fs, task.Path)
		p.results <- Result{
			Path:   task.Path,
			Size:   task.Size,
			Digest: digest,
			Err:    err,
		}
	}
}

func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close stops accepting tasks, waits for in-flight hashing to finish
// and closes the results channel.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()

	if p.pool != nil {
		p.pool.Release()
	}

	close(p.results)
}
