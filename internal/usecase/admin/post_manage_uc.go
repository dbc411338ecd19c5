package admin

func (uc *PostManageUseCase) UpdateTitle(postID uint, title string) error {
	return uc.posts.UpdateTitle(postID, title)
}

func (uc *PostManageUseCase) Delete(postID uint) error {
	return uc.posts.Delete(postID)
}
