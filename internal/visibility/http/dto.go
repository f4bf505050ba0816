package http

import "github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"

type analyzeRequest struct {
	Brand       string   `json:"brand" binding:"required"`
	Industry    string   `json:"industry"`
	Competitors []string `json:"competitors"`
	Market      string   `json:"market"`
	Domain      string   `json:"domain"`

	Mode            string            `json:"mode"`
	GenerateContent bool              `json:"generate_content"`
	AutoPublish     bool              `json:"auto_publish"`
	Credentials     *credentialsInput `json:"publish_credentials"`
}

type credentialsInput struct {
	SiteURL  string `json:"site_url"`
	Username string `json:"username"`
	AppToken string `json:"app_token"`
}

func (r analyzeRequest) toDomain() (domain.AnalysisRequest, domain.RunOptions) {
	req := domain.AnalysisRequest{
		Brand:       r.Brand,
		Industry:    r.Industry,
		Competitors: r.Competitors,
		Market:      r.Market,
		Domain:      r.Domain,
	}

	opts := domain.RunOptions{
		Mode:            domain.RunMode(r.Mode),
		GenerateContent: r.GenerateContent,
		AutoPublish:     r.AutoPublish,
	}
	if r.Credentials != nil {
		opts.Credentials = &domain.PublishCredentials{
			SiteURL:  r.Credentials.SiteURL,
			Username: r.Credentials.Username,
			AppToken: r.Credentials.AppToken,
		}
	}
	return req, opts
}
