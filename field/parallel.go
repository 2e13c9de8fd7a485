package field

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum row count worth splitting across workers.
const parallelThreshold = 16

// rowChunk is a range of rows for one worker.
type rowChunk struct {
	start, end int
}

// workerPool runs the row function over all rows using persistent worker
// goroutines, started on first use.
type workerPool struct {
	rows       int
	numWorkers int
	fn         func(start, end int)

	workChan chan rowChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

func newWorkerPool(workers, rows int, fn func(start, end int)) *workerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}
	return &workerPool{rows: rows, numWorkers: workers, fn: fn}
}

// run evaluates every row and returns once all are done.
func (p *workerPool) run() {
	if p.numWorkers <= 1 || p.rows < parallelThreshold {
		p.fn(0, p.rows)
		return
	}
	p.start()

	chunk := (p.rows + p.numWorkers - 1) / p.numWorkers
	sent := 0
	for start := 0; start < p.rows; start += chunk {
		end := start + chunk
		if end > p.rows {
			end = p.rows
		}
		p.workChan <- rowChunk{start, end}
		sent++
	}
	for i := 0; i < sent; i++ {
		<-p.doneChan
	}
}

func (p *workerPool) start() {
	if p.running {
		return
	}
	p.workChan = make(chan rowChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *workerPool) stop() {
	if !p.running {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopChan:
			return
		case c, ok := <-p.workChan:
			if !ok {
				return
			}
			p.fn(c.start, c.end)
			p.doneChan <- struct{}{}
		}
	}
}
