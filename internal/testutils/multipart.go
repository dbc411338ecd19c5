package testutils

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"
)

// FormFile 描述一个 multipart 文件字段
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// BuildMultipart 构造 multipart 请求体，返回 body 与 Content-Type
func BuildMultipart(t *testing.T, fields map[string][]string, files ...FormFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, values := range fields {
		for _, v := range values {
			if err := writer.WriteField(name, v); err != nil {
				t.Fatalf("write field: %v", err)
			}
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Filename+`"`)
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		} else {
			h.Set("Content-Type", "application/octet-stream")
		}
		part, err := writer.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(f.Data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

// NewFileHeader 通过解析真实 multipart 数据得到可 Open 的 FileHeader
func NewFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	body, ct := BuildMultipart(t, nil, FormFile{Field: "file", Filename: filename, ContentType: contentType, Data: data})
	boundary := ct[len("multipart/form-data; boundary="):]
	form, err := multipart.NewReader(body, boundary).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read multipart form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File["file"]
	if len(headers) != 1 {
		t.Fatalf("expected one file header, got %d", len(headers))
	}
	return headers[0]
}
