package admin

import "mime/multipart"

// Columns 读取待发布表格的表头，供选择可视化列
func (uc *SheetUseCase) Columns(file *multipart.FileHeader) ([]string, error) {
	return uc.sheets.Columns(file)
}
