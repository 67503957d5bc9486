package gui

import "github.com/appengine-ltd/plantagotchi/internal/parser"

// CommandSink accepts intents from hotkeys, buttons and the input line.
type CommandSink interface {
	EnqueueIntent(parser.Intent)
}

// intentQueue buffers intents raised during input handling so they run in
// one place per frame, after input and before drawing.
type intentQueue struct {
	ch chan parser.Intent
}

func newIntentQueue(size int) *intentQueue {
	if size < 1 {
		size = 16
	}
	return &intentQueue{ch: make(chan parser.Intent, size)}
}

func (q *intentQueue) EnqueueIntent(intent parser.Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		// Full: a frame never produces this many, so drop.
	}
}

func (q *intentQueue) Dequeue() (parser.Intent, bool) {
	if q == nil {
		return parser.Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return parser.Intent{}, false
	}
}

func (q *intentQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.ch)
}
