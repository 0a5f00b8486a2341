package repository

import (
	"errors"
	"io/fs"

	"khaogully-admin/pkg/redis"
)

// IsMissing сообщает, что хранилище не содержит значения:
// файла нет на диске или ключа нет в redis.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, redis.ErrNil)
}
