// Package shaders holds the GLSL sources for the scene renderer.
package shaders

// VertexShader transforms the shared 14-float vertex layout. Terrain
// meshes are displaced here by sampling the height map (the CPU mesh is
// flat); everything else passes through. The TBN matrix carries the
// tangent frame to the fragment stage for normal mapping.
const VertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoords;
layout (location = 3) in vec3 aTangent;
layout (location = 4) in vec3 aBitangent;

out vec3 FragPos;
out vec3 Normal;
out vec2 TexCoords;
out mat3 TBN;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform sampler2D uHeightMap;
uniform int uIsTerrain;
uniform float uHeightScale;

void main() {
    vec3 pos = aPos;
    if (uIsTerrain == 1) {
        // Terrain UVs tile 10x; undo that to sample the height map once
        // across the whole grid.
        float h = texture(uHeightMap, aTexCoords / 10.0).r * uHeightScale;
        pos.y += h;
    }

    FragPos = vec3(uModel * vec4(pos, 1.0));
    Normal = mat3(transpose(inverse(uModel))) * aNormal;
    TexCoords = aTexCoords;

    vec3 T = normalize(vec3(uModel * vec4(aTangent, 0.0)));
    vec3 B = normalize(vec3(uModel * vec4(aBitangent, 0.0)));
    vec3 N = normalize(vec3(uModel * vec4(aNormal, 0.0)));
    TBN = mat3(T, B, N);

    gl_Position = uProjection * uView * vec4(FragPos, 1.0);
}
`

// FragmentShader is Blinn-Phong with a single directional light and
// optional tangent-space normal mapping.
const FragmentShader = `#version 410 core
out vec4 FragColor;

in vec3 FragPos;
in vec3 Normal;
in vec2 TexCoords;
in mat3 TBN;

uniform sampler2D uTexture;
uniform sampler2D uNormalMap;
uniform int uUseNormalMap;
uniform vec3 uLightDir;
uniform vec3 uViewPos;

void main() {
    vec3 norm;
    if (uUseNormalMap == 1) {
        vec3 n = texture(uNormalMap, TexCoords).rgb * 2.0 - 1.0;
        norm = normalize(TBN * n);
    } else {
        norm = normalize(Normal);
    }

    vec3 color = texture(uTexture, TexCoords).rgb;

    vec3 ambient = 0.3 * color;
    float diff = max(dot(norm, -uLightDir), 0.0);
    vec3 diffuse = diff * color;

    vec3 viewDir = normalize(uViewPos - FragPos);
    vec3 halfwayDir = normalize(-uLightDir + viewDir);
    float spec = pow(max(dot(norm, halfwayDir), 0.0), 32.0);
    vec3 specular = vec3(0.3) * spec;

    FragColor = vec4(ambient + diffuse + specular, 1.0);
}
`
