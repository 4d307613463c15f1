package adapter

import (
	"fmt"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
)

// Registry 按渠道类型查找适配器，构造完成后只读
type Registry struct {
	adapters map[domain.ChannelType]Adapter
}

// NewRegistry 同一渠道类型注册多次时，后注册的生效
func NewRegistry(adapters ...Adapter) *Registry {
	m := make(map[domain.ChannelType]Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Type()] = a
	}
	return &Registry{adapters: m}
}

func (r *Registry) Get(channel domain.ChannelType) (Adapter, error) {
	a, ok := r.adapters[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrAdapterNotFound, channel)
	}
	return a, nil
}

// Types 已注册的渠道类型
func (r *Registry) Types() []domain.ChannelType {
	res := make([]domain.ChannelType, 0, len(r.adapters))
	for t := range r.adapters {
		res = append(res, t)
	}
	return res
}
