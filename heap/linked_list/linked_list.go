package linked_list

type Node struct {
	elem int32
	next *Node
}

// List is a stack of int32 that owns its chain of nodes exclusively: each
// node is reachable from exactly one place, the head or its predecessor.
type List struct {
	head *Node
}

func New() *List {
	return &List{}
}

func (l *List) IsEmpty() bool {
	return l.head == nil
}

func (l *List) Push(elem int32) {
	l.head = &Node{elem: elem, next: l.head}
}

func (l *List) Pop() (int32, bool) {
	n := l.head
	if n == nil {
		return 0, false
	}
	l.head = n.next
	n.next = nil
	return n.elem, true
}

func (l *List) Contains(elem int32) bool {
	var n = l.head
	for n != nil {
		if n.elem == elem {
			return true
		}
		n = n.next
	}
	return false
}

// Drop tears the list down one node at a time: the head's next link is
// detached before the node is discarded, so no node is released while it
// still owns a successor. The list is empty (and reusable) afterwards.
func (l *List) Drop() {
	cur := l.head
	l.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}
