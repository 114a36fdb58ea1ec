// property_test.go — Randomized invariant checks for the byte ring,
// validated against a plain FIFO queue as the reference model.

package ringbuf_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"

	"github.com/huseyink/ring-buffer/ringbuf"
)

// TestRingBuffer_PropertyBased performs randomized put/get/bulk/block
// operations and checks ordering and occupancy invariants after every
// step. A queue.Queue mirrors the expected FIFO contents.
func TestRingBuffer_PropertyBased(t *testing.T) {
	const capacity = 64
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r := ringbuf.New(capacity)
		model := queue.New()

		for i := 0; i < 5000; i++ {
			switch rng.Intn(5) {
			case 0: // put
				b := byte(rng.Intn(256))
				if r.Put(b) {
					model.Add(b)
				} else if model.Length() != capacity {
					t.Fatalf("seed %d: Put failed with model length %d", seed, model.Length())
				}
			case 1: // get
				b, ok := r.Get()
				if ok {
					want := model.Remove().(byte)
					if b != want {
						t.Fatalf("seed %d: Get = %#02x, want %#02x", seed, b, want)
					}
				} else if model.Length() != 0 {
					t.Fatalf("seed %d: Get failed with model length %d", seed, model.Length())
				}
			case 2: // bulk write
				p := make([]byte, rng.Intn(capacity+8))
				rng.Read(p)
				n := r.Write(p)
				for _, b := range p[:n] {
					model.Add(b)
				}
			case 3: // bulk read
				p := make([]byte, rng.Intn(capacity+8))
				n := r.Read(p)
				for _, b := range p[:n] {
					want := model.Remove().(byte)
					if b != want {
						t.Fatalf("seed %d: Read yielded %#02x, want %#02x", seed, b, want)
					}
				}
			case 4: // commit a random prefix of the write block
				blk := r.WriteBlock()
				if blk == nil {
					continue
				}
				n := rng.Intn(len(blk) + 1)
				for j := 0; j < n; j++ {
					blk[j] = byte(rng.Intn(256))
				}
				if !r.CommitWrite(n) {
					t.Fatalf("seed %d: CommitWrite(%d) failed with block %d", seed, n, len(blk))
				}
				for j := 0; j < n; j++ {
					model.Add(blk[j])
				}
			}

			if r.Len() != model.Length() {
				t.Fatalf("seed %d step %d: Len = %d, model = %d", seed, i, r.Len(), model.Length())
			}
			if r.Len()+r.Free() != r.Cap() {
				t.Fatalf("seed %d step %d: Len+Free = %d, want %d", seed, i, r.Len()+r.Free(), r.Cap())
			}
			if r.IsEmpty() != (model.Length() == 0) {
				t.Fatalf("seed %d step %d: IsEmpty = %v with model length %d", seed, i, r.IsEmpty(), model.Length())
			}
			if r.IsFull() != (model.Length() == capacity) {
				t.Fatalf("seed %d step %d: IsFull = %v with model length %d", seed, i, r.IsFull(), model.Length())
			}
			if wl := r.WriteBlockLen(); wl > r.Free() {
				t.Fatalf("seed %d step %d: WriteBlockLen %d exceeds Free %d", seed, i, wl, r.Free())
			}
			if rl := r.ReadBlockLen(); rl > r.Len() {
				t.Fatalf("seed %d step %d: ReadBlockLen %d exceeds Len %d", seed, i, rl, r.Len())
			}
		}
	}
}
