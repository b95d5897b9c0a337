package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWindow_Basic(t *testing.T) {
	// 25 条记录、每页 10 条、第 1 页
	w := ComputeWindow(25, 1, 10, 10)

	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 10, w.PageSize)
	assert.Equal(t, int64(25), w.TotalCount)
	assert.Equal(t, 3, w.TotalPages)
	assert.False(t, w.HasPrevPage)
	assert.True(t, w.HasNextPage)
	assert.Equal(t, []int{1, 2, 3}, w.Pages)
}

func TestComputeWindow_EmptyList(t *testing.T) {
	// 空列表也要渲染出"第 1 页 / 共 1 页"，总页数永远不为 0
	w := ComputeWindow(0, 1, 10, 10)

	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, 1, w.Page)
	assert.False(t, w.HasPrevPage)
	assert.False(t, w.HasNextPage)
	assert.Equal(t, []int{1}, w.Pages)
}

func TestComputeWindow_ClampsPage(t *testing.T) {
	// 越界页码收敛到合法区间，而不是报错
	w := ComputeWindow(25, 99, 10, 10)
	assert.Equal(t, 3, w.Page)
	assert.True(t, w.HasPrevPage)
	assert.False(t, w.HasNextPage)

	w = ComputeWindow(25, -5, 10, 10)
	assert.Equal(t, 1, w.Page)
}

func TestComputeWindow_BlockWindow(t *testing.T) {
	// 123 页中的第 13 页，块宽 10，页码块应为 [11..20]
	w := ComputeWindow(1230, 13, 10, 10)

	assert.Equal(t, 123, w.TotalPages)
	assert.Len(t, w.Pages, 10)
	assert.Equal(t, 11, w.Pages[0])
	assert.Equal(t, 20, w.Pages[9])
}

func TestComputeWindow_BlockTruncatedAtTotalPages(t *testing.T) {
	// 最后一个页码块按总页数截断
	w := ComputeWindow(125, 13, 10, 10)

	assert.Equal(t, 13, w.TotalPages)
	assert.Equal(t, []int{11, 12, 13}, w.Pages)
}

func TestComputeWindow_InvalidSizes(t *testing.T) {
	// pageSize/blockSize 非法时收敛为 1
	w := ComputeWindow(5, 1, 0, 0)
	assert.Equal(t, 1, w.PageSize)
	assert.Equal(t, 5, w.TotalPages)
	assert.Equal(t, []int{1}, w.Pages)
}

func TestWindow_PrevNextOffset(t *testing.T) {
	w := ComputeWindow(100, 5, 10, 10)

	assert.Equal(t, 4, w.PrevPage())
	assert.Equal(t, 6, w.NextPage())
	assert.Equal(t, 40, w.Offset())

	first := ComputeWindow(100, 1, 10, 10)
	assert.Equal(t, 1, first.PrevPage())

	last := ComputeWindow(100, 10, 10, 10)
	assert.Equal(t, 10, last.NextPage())
}
