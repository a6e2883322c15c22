package testkit

import "testing"

func TestMustPanicPasses(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustContainPasses(t *testing.T) {
	MustContain(t, "scan finished with 3 incidents", "3 incidents")
}
