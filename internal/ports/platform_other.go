//go:build !linux && !windows

package ports

func DefaultEnumerator() Enumerator { return DetailedEnumerator{} }

func DefaultSelector() Selector { return LastPort }
