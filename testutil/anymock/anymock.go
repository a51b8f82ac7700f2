// Package anymock sets up gomock recorders of app components.
package anymock

import (
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-stark/curve"
)

type MockComp interface {
	Name() *gomock.Call
	Init(x any) *gomock.Call
}

type MockProvider interface {
	MockComp
	CurveName() *gomock.Call
}

// ExpectComp allows any number of lifecycle calls on a mocked component
func ExpectComp(c MockComp, name string) {
	c.Name().Return(name).AnyTimes()
	c.Init(gomock.Any()).AnyTimes()
}

// ExpectProvider registers lifecycle expectations of a mocked curve.Provider
func ExpectProvider(c MockProvider, curveName string) {
	ExpectComp(c, curve.CName)
	c.CurveName().Return(curveName).AnyTimes()
}
