package xcodebuild

import (
	"reflect"
	"testing"
)

func TestCreateXCFrameworkArgs(t *testing.T) {
	x := New()
	got := x.CreateXCFrameworkArgs("out/libfoo.xcframework", []string{"ios/libfoo.dylib"})
	want := []string{"-create-xcframework", "-library", "ios/libfoo.dylib", "-output", "out/libfoo.xcframework"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CreateXCFrameworkArgs() = %v, want %v", got, want)
	}
}

func TestCreateXCFrameworkNoSlices(t *testing.T) {
	x := New()
	if err := x.CreateXCFramework("out/libfoo.xcframework"); err == nil {
		t.Error("CreateXCFramework() with no slices should fail")
	}
}
