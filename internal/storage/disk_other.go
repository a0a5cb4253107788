//go:build !linux && !darwin

package storage

func diskCapacity(string) (int64, error) { return 0, nil }
