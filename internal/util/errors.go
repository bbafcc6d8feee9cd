package util

import "errors"

var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrZeroBaseline   = errors.New("percentage change undefined for zero baseline")
	ErrUnknownChart   = errors.New("unknown chart kind")
)

// IsClientError 数据集类错误返回 400，其余按 500 处理
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDataset) || errors.Is(err, ErrZeroBaseline)
}
