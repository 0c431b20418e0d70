package kvstore

import "context"

// Store 字符串键到 JSON 文档的持久化存储接口
type Store interface {
	// Get 读取键对应的文档并反序列化到 dest；键不存在时返回 false
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Put 序列化 value 并写入键（整文档覆盖）
	Put(ctx context.Context, key string, value interface{}) error
	// Delete 删除键；键不存在时静默成功
	Delete(ctx context.Context, key string) error
}
