package systems

import "github.com/decker502/whackamole/pkg/ecs"

// DestroyAll 标记所有拥有组件 T 的实体待删除，返回标记数量
// 调用方负责随后调用 RemoveMarkedEntities
func DestroyAll[T any](em *ecs.EntityManager) int {
	ids := ecs.GetEntitiesWith1[T](em)
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	return len(ids)
}
