// Package registry 提供按键创建产品的通用工厂注册表
package registry

import (
	"errors"
	"fmt"
)

// ErrNotRegistered 请求的键没有注册工厂
var ErrNotRegistered = errors.New("not registered")

// Creator 无参构造函数，每次调用返回一个新的产品
type Creator[P any] func() P

// Registry 键到构造函数的映射，键唯一，先注册者生效。
// 非并发安全：注册须在使用前于单个 goroutine 中完成。
type Registry[K comparable, P any] struct {
	name     string
	creators map[K]Creator[P]
}

func New[K comparable, P any](name string) *Registry[K, P] {
	return &Registry[K, P]{
		name:     name,
		creators: make(map[K]Creator[P]),
	}
}

// Register 注册构造函数，键已存在时返回 false 且不覆盖原有绑定
func (r *Registry[K, P]) Register(key K, creator Creator[P]) bool {
	if creator == nil {
		return false
	}
	if _, exists := r.creators[key]; exists {
		return false
	}

	r.creators[key] = creator
	return true
}

// Create 根据键生产对应的产品
func (r *Registry[K, P]) Create(key K) (product P, err error) {
	creator, ok := r.creators[key]
	if !ok {
		return product, fmt.Errorf("%s: %v: %w", r.name, key, ErrNotRegistered)
	}

	return creator(), nil
}

func (r *Registry[K, P]) Registered(key K) bool {
	_, ok := r.creators[key]
	return ok
}

// Keys 返回所有已注册的键，顺序不固定
func (r *Registry[K, P]) Keys() []K {
	keys := make([]K, 0, len(r.creators))
	for key := range r.creators {
		keys = append(keys, key)
	}

	return keys
}

func (r *Registry[K, P]) Len() int {
	return len(r.creators)
}
