package platform

type Family string

const (
	RHEL   Family = "rhel"
	Debian Family = "debian"
)

const rhelErrorLog = "/var/log/mysql-default/error.log"

func ParseFamily(value string) (Family, error) {
	switch family := Family(value); family {
	case RHEL, Debian:
		return family, nil
	default:
		return "", &UnknownPlatformFamilyError{Value: value}
	}
}

// ErrorLogOverride returns the mysqld log-error location a family needs, if
// any. RHEL hosts with SELinux tooling installed log outside /var/log/mysql.
func (f Family) ErrorLogOverride(selinuxPresent bool) (string, bool) {
	switch f {
	case RHEL:
		return rhelErrorLog, selinuxPresent
	case Debian:
		return "", false
	default:
		return "", false
	}
}

type CloudProvider string

const (
	NoCloud   CloudProvider = ""
	AWS       CloudProvider = "aws"
	Google    CloudProvider = "google"
	Azure     CloudProvider = "azure"
	Rackspace CloudProvider = "rackspace"
	OpenStack CloudProvider = "openstack"
	Vagrant   CloudProvider = "vagrant"
)

func ParseCloudProvider(value string) (CloudProvider, error) {
	if value == "none" {
		return NoCloud, nil
	}

	switch provider := CloudProvider(value); provider {
	case NoCloud, AWS, Google, Azure, Rackspace, OpenStack, Vagrant:
		return provider, nil
	default:
		return "", &UnknownCloudProviderError{Value: value}
	}
}

// RHELRepoID is the repository id `yum repolist` shows once the cloud has
// finished registering the RHEL repositories.
func (c CloudProvider) RHELRepoID() (string, bool) {
	switch c {
	case Rackspace:
		return "rhel-x86_64-server", true
	case NoCloud, AWS, Google, Azure, OpenStack, Vagrant:
		return "", false
	default:
		return "", false
	}
}
