package dto

import "mime/multipart"

type UploadMediaRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
}

type UploadMediaResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (u *UploadMediaResponse) FromUpload(url, fileName string) {
	u.URL = url
	u.FileName = fileName
}

type UploadMultipleMediaResponse struct {
	Files []UploadMediaResponse `json:"files"`
}

type ListMediaResponse struct {
	Files []string `json:"files"`
}
