package worker

import (
	"context"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/pkg/eventstream"
)

// recordingPublisher captures every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*eventstream.TranslationEvent
	err    error
	block  chan struct{}
}

func (r *recordingPublisher) PublishTranslation(_ context.Context, event *eventstream.TranslationEvent) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func testEvent(translation string) *eventstream.TranslationEvent {
	return eventstream.NewTranslationEvent([]string{"openai", "anthropic"}, nil, translation, eventstream.RequestMeta{})
}

var _ = Describe("Worker Pool", func() {
	var (
		wp        *Pool
		publisher *recordingPublisher
	)

	BeforeEach(func() {
		logger, _ := zap.NewDevelopment()
		publisher = &recordingPublisher{}

		var err error
		wp, err = NewPool(&Config{
			Publisher: publisher,
			Logger:    logger,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("requires a publisher", func() {
		_, err := NewPool(&Config{})
		Expect(err).To(HaveOccurred())
	})

	Describe("Enqueue", func() {
		It("returns true when the queue has capacity", func() {
			Expect(wp.Enqueue(Job{Event: testEvent("Ayy")})).To(BeTrue())
			wp.Close()
		})

		It("publishes every queued event before Close returns", func() {
			for range 10 {
				Expect(wp.Enqueue(Job{Event: testEvent("Ayy")})).To(BeTrue())
			}
			wp.Close()
			Expect(publisher.count()).To(Equal(10))
		})

		It("drops jobs after the pool is closed", func() {
			wp.Close()
			Expect(wp.Enqueue(Job{Event: testEvent("late")})).To(BeFalse())
		})

		It("drops jobs when the queue is full", func() {
			blocked := &recordingPublisher{block: make(chan struct{})}
			small, err := NewPool(&Config{Publisher: blocked, NumWorkers: 1, QueueSize: 1})
			Expect(err).NotTo(HaveOccurred())

			// One job in flight, one buffered: the next enqueue must be dropped.
			Expect(small.Enqueue(Job{Event: testEvent("1")})).To(BeTrue())
			Eventually(func() int { return len(small.queue) }).Should(BeZero())
			Expect(small.Enqueue(Job{Event: testEvent("2")})).To(BeTrue())
			Expect(small.Enqueue(Job{Event: testEvent("3")})).To(BeFalse())

			close(blocked.block)
			small.Close()
			Expect(blocked.count()).To(Equal(2))
		})
	})

	It("keeps working after a publish failure", func() {
		publisher.err = errors.New("backend down")
		Expect(wp.Enqueue(Job{Event: testEvent("Ayy")})).To(BeTrue())
		wp.Close()
		Expect(publisher.count()).To(BeZero())
	})

	It("tolerates repeated Close calls", func() {
		wp.Close()
		Expect(wp.Close).NotTo(Panic())
	})
})
