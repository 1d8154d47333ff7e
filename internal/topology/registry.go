package topology

// Registry enumerates every resource a project owns. All identifiers are
// pure functions of the project prefix: same prefix in, same resources out,
// always in the same order.
type Registry struct {
	project   string
	resources []Resource
}

// New builds the registry for a project prefix. The set mirrors what the
// provisioning stack creates for one pipeline environment: the data buckets
// and their keys, the processing function with its dependency layer, the
// execution role, the two service users, the function log group, the runtime
// parameters, and the remote-state bucket and lock table.
func New(project string) *Registry {
	return &Registry{
		project: project,
		resources: []Resource{
			{Kind: KindBucket, ID: project + "-ingest", Name: "ingest bucket"},
			{Kind: KindBucket, ID: project + "-processed", Name: "processed bucket"},
			{Kind: KindBucket, ID: project + "-tfstate", Name: "state bucket"},
			{Kind: KindTable, ID: project + "-tf-lock", Name: "state lock table"},
			{Kind: KindKeyAlias, ID: "alias/" + project + "-ingest", Name: "ingest data key"},
			{Kind: KindKeyAlias, ID: "alias/" + project + "-processed", Name: "processed data key"},
			{Kind: KindRole, ID: project + "-lambda-role", Name: "function execution role"},
			{Kind: KindUser, ID: project + "-user-a", Name: "ingest writer"},
			{Kind: KindUser, ID: project + "-user-b", Name: "processed reader"},
			{Kind: KindFunction, ID: project + "-processor", Name: "processing function"},
			{Kind: KindLayer, ID: project + "-pillow", Name: "imaging dependency layer"},
			{Kind: KindLogGroup, ID: "/aws/lambda/" + project + "-processor", Name: "function log group"},
			{Kind: KindParameter, ID: "/" + project + "/ingest-bucket", Name: "ingest bucket name"},
			{Kind: KindParameter, ID: "/" + project + "/processed-bucket", Name: "processed bucket name"},
			{Kind: KindParameter, ID: "/" + project + "/processed-kms-key-arn", Name: "processed key ARN"},
			{Kind: KindParameter, ID: "/" + project + "/max-file-size", Name: "max file size limit"},
		},
	}
}

// Project returns the prefix the registry was built from.
func (r *Registry) Project() string { return r.project }

// Resources returns the full resource set in display order.
func (r *Registry) Resources() []Resource {
	out := make([]Resource, len(r.resources))
	copy(out, r.resources)
	return out
}
