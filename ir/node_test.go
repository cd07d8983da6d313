package ir

import (
	"testing"
)

func TestUpsert(t *testing.T) {
	var kvs []KeyVal
	kvs = Upsert(kvs, "a", FromInt(1))
	kvs = Upsert(kvs, "b", FromInt(2))
	kvs = Upsert(kvs, "a", FromInt(3))
	node := FromKeyVals(kvs)
	if len(node.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(node.Fields))
	}
	if node.Fields[0].String != "a" {
		t.Errorf("first key %q, want a", node.Fields[0].String)
	}
	if v := node.Values[0]; v.Int64 == nil || *v.Int64 != 3 {
		t.Errorf("a did not take the last value")
	}
	if node.Fields[1].String != "b" {
		t.Errorf("second key %q, want b", node.Fields[1].String)
	}
}

func TestFromKeyValsOrder(t *testing.T) {
	kvs := []KeyVal{
		{Key: FromString("z"), Val: FromInt(1)},
		{Key: FromString("a"), Val: FromInt(2)},
		{Key: FromString("m"), Val: FromInt(3)},
	}
	node := FromKeyVals(kvs)
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if node.Fields[i].String != k {
			t.Errorf("field %d: %q, want %q", i, node.Fields[i].String, k)
		}
	}
	for i, v := range node.Values {
		if v.Parent != node || v.ParentIndex != i {
			t.Errorf("value %d has wrong parent links", i)
		}
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	node := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
	})
	if node.Fields[0].String != "a" || node.Fields[1].String != "z" {
		t.Errorf("FromMap did not sort keys: %q, %q",
			node.Fields[0].String, node.Fields[1].String)
	}
}

func TestGet(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromString("x")},
	})
	if v := Get(node, "b"); v == nil || v.String != "x" {
		t.Errorf("Get(b) = %v", v)
	}
	if v := Get(node, "c"); v != nil {
		t.Errorf("Get(c) = %v, want nil", v)
	}
}

func TestCloneIndependent(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
	})
	cl := orig.Clone()
	*cl.Values[0].Values[0].Int64 = 99
	cl.Fields[0].String = "zzz"
	if *orig.Values[0].Values[0].Int64 != 1 {
		t.Errorf("clone shares number storage with original")
	}
	if orig.Fields[0].String != "a" {
		t.Errorf("clone shares field nodes with original")
	}
}

func TestVisit(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Node{FromInt(1), Null()})},
		{Key: FromString("b"), Val: FromBool(true)},
	})
	pre, post := 0, 0
	err := node.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, array, 2 array elements, bool
	if pre != 5 || post != 5 {
		t.Errorf("visited pre=%d post=%d, want 5/5", pre, post)
	}
}

func TestRoot(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Node{FromInt(1)})},
	})
	leaf := node.Values[0].Values[0]
	if leaf.Root() != node {
		t.Errorf("Root did not reach the top")
	}
}
