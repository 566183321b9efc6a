package api

import "fmt"

type Configuration struct {
	Address     string
	Scheme      string
	Token       string
	ProjectName string
	UserAgent   string
	domain      string
}

func NewConfiguration(address, token, projectName string) *Configuration {
	cfg := &Configuration{
		UserAgent:   "FeatureMesh/1.0.0/go",
		Scheme:      "http",
		Address:     address,
		ProjectName: projectName,
		Token:       token,
	}
	return cfg
}

func (c *Configuration) SetDomain(domain string) {
	c.domain = domain
}

func (c *Configuration) GetDomain() string {
	if c.domain == "" {
		c.domain = c.Address
	}

	return c.domain
}

func (c *Configuration) BaseURL() string {
	return fmt.Sprintf("%s://%s", c.Scheme, c.GetDomain())
}
