package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

func init() {
	node, _ = snowflake.NewNode(1)
}

// SetNode 多实例部署时每个进程需要不同的节点号
func SetNode(id int64) error {
	n, err := snowflake.NewNode(id)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

func GenID() int64 {
	mu.RLock()
	defer mu.RUnlock()
	return node.Generate().Int64()
}
