package mem

import "testing"

func TestSizeUnits(t *testing.T) {
	if Kb != 1024 {
		t.Fatalf("expected Kb to be 1024; got %d", Kb)
	}
	if Mb != 1024*1024 {
		t.Fatalf("expected Mb to be %d; got %d", 1024*1024, Mb)
	}
}

func TestMemset(t *testing.T) {
	for _, size := range []int{0, 1, 7, 38400, 4096} {
		buf := make([]byte, size)
		Memset(buf, 0xa5)
		for i, b := range buf {
			if b != 0xa5 {
				t.Fatalf("[size %d] expected byte %d to be 0xa5; got 0x%x", size, i, b)
			}
		}
	}
}

func TestMemcopy(t *testing.T) {
	dst := make([]byte, 3)
	if n := Memcopy(dst, []byte{1, 2, 3, 4}); n != 3 {
		t.Fatalf("expected 3 bytes to be copied; got %d", n)
	}
	if dst[0] != 1 || dst[2] != 3 {
		t.Fatalf("unexpected copy result %v", dst)
	}
}

func TestBudgetAllocator(t *testing.T) {
	a := NewBudgetAllocator(100 * Byte)

	first, err := a.Alloc(60)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 60 {
		t.Fatalf("expected a 60 byte buffer; got %d", len(first))
	}

	if _, err = a.Alloc(41); err != ErrOutOfMemory {
		t.Fatalf("expected ErrOutOfMemory; got %v", err)
	}

	second, err := a.Alloc(40)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.InUse(); got != 100 {
		t.Fatalf("expected 100 bytes in use; got %d", got)
	}

	a.Free(first)
	a.Free(second)
	if got := a.InUse(); got != 0 {
		t.Fatalf("expected 0 bytes in use after Free; got %d", got)
	}
}

func TestHeapAllocator(t *testing.T) {
	buf, err := Heap.Alloc(2 * Kb)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 2048 {
		t.Fatalf("expected a 2048 byte buffer; got %d", len(buf))
	}
	Heap.Free(buf)
}
