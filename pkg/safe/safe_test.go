package safe

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// fakeSketch is a minimal, unsynchronized stand-in for freqsketch.Sketch
// used to test the locking wrapper in isolation.
type fakeSketch struct {
	counts map[string]uint64
}

func newFakeSketch() *fakeSketch {
	return &fakeSketch{counts: make(map[string]uint64)}
}

func (f *fakeSketch) Insert(item string, count uint64) { f.counts[item] += count }
func (f *fakeSketch) Update(items []string) {
	for _, item := range items {
		f.Insert(item, 1)
	}
}
func (f *fakeSketch) Get(item string) uint64 { return f.counts[item] }
func (f *fakeSketch) Depth() int             { return 4 }
func (f *fakeSketch) Width() int             { return 100 }

func TestSafeSketch_DelegatesCorrectly(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	s := New[string](newFakeSketch())
	s.Insert("a", 3)
	s.Insert("a", 2)
	is.Equal(uint64(5), s.Get("a"))
	is.Equal(4, s.Depth())
	is.Equal(100, s.Width())

	s.Update([]string{"b", "b", "c"})
	is.Equal(uint64(2), s.Get("b"))
	is.Equal(uint64(1), s.Get("c"))
}

func TestSafeSketch_ConcurrentInsertsDoNotRace(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := New[string](newFakeSketch())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Insert("key", 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), s.Get("key"))
}
