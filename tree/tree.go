package tree

import (
	"fmt"
	"sync"

	"github.com/cosmos/iavl"
	dbm "github.com/tendermint/tm-db"
)

// ReadOnlyTree used for CheckState: API of immutable tree
type ReadOnlyTree interface {
	Get(key []byte) (index int64, value []byte)
	Version() int64
	Hash() []byte
	Iterate(fn func(key []byte, value []byte) bool) (stopped bool)
}

// Committer is implemented by every state sub-module: flush dirty objects into
// the mutable tree and pick up the freshly saved immutable version afterwards.
type Committer interface {
	Commit(db *iavl.MutableTree, version int64) error
	SetImmutableTree(immutableTree *iavl.ImmutableTree)
}

// MTree mutable tree, used for deliver state
type MTree interface {
	ReadOnlyTree
	AvailableVersions() []int
	Set(key, value []byte) bool
	Remove(key []byte) ([]byte, bool)
	SaveVersion() ([]byte, int64, error)
	DeleteVersion(version int64) error
	GetLastImmutable() *iavl.ImmutableTree
	GetImmutableAtHeight(version int64) (*iavl.ImmutableTree, error)
	Commit(committers ...Committer) (hash []byte, version int64, err error)
	GlobalLock()
	GlobalUnlock()
}

// NewMutableTree creates and returns new MutableTree using given db. Panics on an error.
// If you want to get read-only state, use NewImmutableTree.
func NewMutableTree(height uint64, db dbm.DB, cacheSize int, initialVersion uint64) (MTree, error) {
	tree, err := iavl.NewMutableTreeWithOpts(db, cacheSize, &iavl.Options{InitialVersion: initialVersion})
	if err != nil {
		return nil, err
	}

	if height == 0 {
		return &mutableTree{tree: tree}, nil
	}

	if _, err := tree.LoadVersionForOverwriting(int64(height)); err != nil {
		return nil, err
	}

	return &mutableTree{tree: tree}, nil
}

type mutableTree struct {
	tree *iavl.MutableTree
	lock sync.RWMutex
	sync.Mutex
}

// NewImmutableTree returns iavl.ImmutableTree at given height of the given db
func NewImmutableTree(height uint64, db dbm.DB) (*iavl.ImmutableTree, error) {
	tree, err := iavl.NewMutableTree(db, 1024)
	if err != nil {
		return nil, err
	}

	if _, err := tree.LazyLoadVersion(int64(height)); err != nil {
		return nil, fmt.Errorf("version %d: %w", height, err)
	}

	return tree.GetImmutable(int64(height))
}

func (t *mutableTree) GlobalLock() {
	t.Lock()
}

func (t *mutableTree) GlobalUnlock() {
	t.Unlock()
}

// Commit flushes all dirty state objects into the tree, saves a version and
// rebases every committer onto the new immutable tree. All effects of a block
// become visible at once or not at all.
func (t *mutableTree) Commit(committers ...Committer) ([]byte, int64, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	version := t.tree.Version() + 1
	for _, committer := range committers {
		if err := committer.Commit(t.tree, version); err != nil {
			return nil, 0, err
		}
	}

	hash, version, err := t.tree.SaveVersion()
	if err != nil {
		return nil, 0, err
	}

	immutable, err := t.tree.GetImmutable(version)
	if err != nil {
		return nil, 0, err
	}

	for _, committer := range committers {
		committer.SetImmutableTree(immutable)
	}

	return hash, version, nil
}

func (t *mutableTree) Iterate(fn func(key []byte, value []byte) bool) (stopped bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Iterate(fn)
}

func (t *mutableTree) Hash() []byte {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Hash()
}

func (t *mutableTree) Version() int64 {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Version()
}

func (t *mutableTree) GetLastImmutable() *iavl.ImmutableTree {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.ImmutableTree
}

func (t *mutableTree) GetImmutableAtHeight(version int64) (*iavl.ImmutableTree, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.GetImmutable(version)
}

func (t *mutableTree) Get(key []byte) (index int64, value []byte) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Get(key)
}

func (t *mutableTree) Set(key, value []byte) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tree.Set(key, value)
}

func (t *mutableTree) Remove(key []byte) ([]byte, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tree.Remove(key)
}

func (t *mutableTree) SaveVersion() ([]byte, int64, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tree.SaveVersion()
}

func (t *mutableTree) DeleteVersion(version int64) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.tree.VersionExists(version) {
		return nil
	}

	return t.tree.DeleteVersion(version)
}

func (t *mutableTree) AvailableVersions() []int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.AvailableVersions()
}
