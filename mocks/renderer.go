package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vdobler/pointplot"
)

// Renderer mock
type Renderer struct {
	mock.Mock
}

// Render provides a mock function with given fields: t, o
func (_m *Renderer) Render(t *pointplot.Table, o pointplot.Options) error {
	ret := _m.Called(t, o)

	var r0 error
	if rf, ok := ret.Get(0).(func(*pointplot.Table, pointplot.Options) error); ok {
		r0 = rf(t, o)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
