package ptr

import "testing"

func TestTo(t *testing.T) {
	t.Run("int64 id", func(t *testing.T) {
		id := int64(4212)
		p := To(id)
		if p == nil {
			t.Fatal("Expected non-nil pointer")
		}
		if *p != id {
			t.Errorf("Expected %d, got %d", id, *p)
		}
		// Verify it's a different address
		if p == &id {
			t.Error("Expected different address")
		}
	})

	t.Run("string", func(t *testing.T) {
		s := "h:4212"
		p := To(s)
		if p == nil {
			t.Fatal("Expected non-nil pointer")
		}
		if *p != s {
			t.Errorf("Expected %q, got %q", s, *p)
		}
	})
}

func TestInt(t *testing.T) {
	age := 17
	p := Int(age)
	if p == nil {
		t.Fatal("Expected non-nil pointer")
	}
	if *p != age {
		t.Errorf("Expected %d, got %d", age, *p)
	}
}

func TestInt64(t *testing.T) {
	id := int64(9876543210)
	p := Int64(id)
	if p == nil {
		t.Fatal("Expected non-nil pointer")
	}
	if *p != id {
		t.Errorf("Expected %d, got %d", id, *p)
	}
}

func TestMutationIndependence(t *testing.T) {
	original := int64(100)
	p := Int64(original)

	// Modify through pointer
	*p = 200

	// Original should be unchanged
	if original != 100 {
		t.Error("Original value should not be affected by pointer mutation")
	}
	if *p != 200 {
		t.Error("Pointer value should be modified")
	}
}
