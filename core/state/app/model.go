package app

import (
	"sync"
)

type Model struct {
	MaxGas uint64

	markDirty func()
	lock      sync.RWMutex
}

func (model *Model) getMaxGas() uint64 {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return model.MaxGas
}

func (model *Model) setMaxGas(maxGas uint64) {
	model.lock.Lock()
	if model.MaxGas != maxGas {
		model.MaxGas = maxGas
		model.lock.Unlock()
		model.markDirty()
		return
	}
	model.lock.Unlock()
}
